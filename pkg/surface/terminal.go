package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kickoff/kickoff/pkg/predict"
)

// TerminalRenderer renders results as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// RenderPrediction writes a prediction verdict plus the chain evidence
// behind it. Positive differentials favor the home team.
func (r *TerminalRenderer) RenderPrediction(w io.Writer, result *predict.Result) error {
	diff := result.GoalDifference

	var verdict string
	switch {
	case diff > 0:
		verdict = fmt.Sprintf("%s beats %s by %.2f goals",
			colored(result.HomeTeam, colorGreen), result.AwayTeam, diff)
	case diff < 0:
		verdict = fmt.Sprintf("%s loses to %s by %.2f goals",
			colored(result.HomeTeam, colorRed), result.AwayTeam, -diff)
	default:
		verdict = fmt.Sprintf("%s draws with %s", result.HomeTeam, result.AwayTeam)
	}

	fmt.Fprintf(w, "%s\n\n", bold("Prediction: "+verdict))
	fmt.Fprintf(w, "Season %s, %d result chains examined\n\n", result.Season, result.ChainCount)

	// Show the strongest evidence: shortest chains first, up to 5.
	shown := 0
	for length := 1; shown < 5 && length <= maxChainLength(result); length++ {
		for _, cs := range result.Breakdown {
			if cs.Length != length || shown >= 5 {
				continue
			}
			sign := "+"
			if cs.Signal < 0 {
				sign = ""
			}
			fmt.Fprintf(w, "  (%s%.0f) %s\n", sign, cs.Signal, dim(strings.Join(cs.Matchups, " -> ")))
			shown++
		}
	}
	if result.ChainCount > shown {
		fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("... and %d more", result.ChainCount-shown)))
	}
	fmt.Fprintln(w)

	return nil
}

// Table writes a simple aligned table with a title, in the CLI's house style.
func Table(w io.Writer, title string, headers []string, rows [][]string) {
	fmt.Fprintf(w, "%s\n\n", bold(title))

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Pad against the raw header so escape codes don't skew alignment.
	for i, h := range headers {
		pad := strings.Repeat(" ", widths[i]+2-len(h))
		fmt.Fprintf(w, "  %s%s", colored(h, colorCyan), pad)
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(w, "  %-*s", widths[i]+2, cell)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func maxChainLength(result *predict.Result) int {
	max := 0
	for _, cs := range result.Breakdown {
		if cs.Length > max {
			max = cs.Length
		}
	}
	return max
}

// Package surface defines output rendering for Kickoff query results.
// Implementations handle different output targets: terminal and JSON.
// Sign interpretation of predictions happens here, not in the engine.
package surface

import (
	"encoding/json"
	"io"

	"github.com/kickoff/kickoff/pkg/predict"
)

// Renderer produces formatted output from a prediction result.
type Renderer interface {
	// RenderPrediction writes the formatted prediction to the writer.
	RenderPrediction(w io.Writer, result *predict.Result) error
}

// JSONRenderer marshals results to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) RenderPrediction(w io.Writer, result *predict.Result) error {
	return writeJSON(w, result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

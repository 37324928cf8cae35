// Package forge turns a free-text idea into an interpretation, a cinematic
// video prompt and a copywriting package. Every function is pure and safe
// for concurrent use.
package forge

import "fmt"

// Generate runs the full pipeline for one idea. It fails only with
// ErrInvalidInput, wrapped.
func Generate(idea string) (Result, error) {
	in, err := Interpret(idea)
	if err != nil {
		return Result{}, fmt.Errorf("interpret: %w", err)
	}
	return Result{
		Interpretation: in,
		Prompt:         Compose(in),
		Copywriting:    Write(in),
	}, nil
}

// Package model loads and evaluates the pre-trained revenue regression artifact.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"slices"

	"thirdcoast.systems/adrevenue/internal/feature"
)

// Scorer is the prediction capability. Handlers depend on this interface so
// they can be tested against a stub without the real artifact.
type Scorer interface {
	Predict(rec feature.Record) (float64, error)
}

// Artifact is a serialized regression model exported by the training pipeline.
// Its column list must match the feature record schema exactly; the exported
// coefficients are opaque to the rest of the service.
type Artifact struct {
	Name      string                        `json:"name"`
	Version   int                           `json:"version"`
	Columns   []string                      `json:"columns"`
	Intercept float64                       `json:"intercept"`
	Numeric   map[string]NumericTerm        `json:"numeric"`
	Weights   map[string]map[string]float64 `json:"categorical"`
}

// NumericTerm is one numeric column's contribution to the estimate.
type NumericTerm struct {
	Coefficient float64 `json:"coefficient"`
	Log1p       bool    `json:"log1p"`
}

// Load reads and validates the artifact at path. Called once at startup; a
// failure here is fatal to the process, since no prediction is possible
// without the model.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %q: %w", path, err)
	}

	return &a, nil
}

func (a *Artifact) validate() error {
	want := feature.Columns()
	if !slices.Equal(a.Columns, want) {
		return fmt.Errorf("column list %v does not match expected schema %v", a.Columns, want)
	}

	known := map[string]bool{}
	for _, col := range want {
		known[col] = true
	}
	for col := range a.Numeric {
		if !known[col] {
			return fmt.Errorf("numeric term references unknown column %q", col)
		}
	}
	for col := range a.Weights {
		if !known[col] {
			return fmt.Errorf("categorical weights reference unknown column %q", col)
		}
	}

	return nil
}

// Predict evaluates the artifact over one feature record and returns the
// estimated ad revenue in dollars.
func (a *Artifact) Predict(rec feature.Record) (float64, error) {
	row := rec.Row()

	estimate := a.Intercept
	for col, term := range a.Numeric {
		v, ok := row[col].(float64)
		if !ok {
			return 0, fmt.Errorf("numeric term %q applied to non-numeric column", col)
		}
		if term.Log1p {
			v = math.Log1p(v)
		}
		estimate += term.Coefficient * v
	}
	for col, weights := range a.Weights {
		v, ok := row[col].(string)
		if !ok {
			return 0, fmt.Errorf("categorical weights %q applied to non-categorical column", col)
		}
		estimate += weights[v]
	}

	return estimate, nil
}

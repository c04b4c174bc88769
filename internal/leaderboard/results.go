// internal/leaderboard/results.go
// Package leaderboard turns a benchmark results file into the rows, heatmaps
// and chart series shown on the EsoBench leaderboard.
package leaderboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CadeHall0/EsoBench/internal/ranking"
)

var (
	// ErrInvalidResults wraps parse and schema failures of a results file.
	ErrInvalidResults = errors.New("invalid results")
	// ErrNoModels is returned for a results file without any model.
	ErrNoModels = errors.New("no models found in results")
)

// Model holds one model's results. Numbers are metrics, number arrays are
// per-attempt series keyed by task name.
type Model struct {
	Name     string
	Provider string
	Metrics  map[string]float64
	Series   map[string][]float64
}

// Record exposes the model's metrics to the ranking package.
func (m Model) Record() ranking.Record {
	return ranking.Record{Name: m.Name, Metrics: m.Metrics}
}

// Metric returns a metric value, 0 when absent.
func (m Model) Metric(name string) float64 {
	return m.Record().Value(name)
}

// Results is the ordered set of models from one results file. Order follows
// the file so that full ties keep their published order.
type Results struct {
	models []Model
	index  map[string]int
}

// Models returns the models in file order.
func (r *Results) Models() []Model {
	return append([]Model(nil), r.models...)
}

// Len returns the number of models.
func (r *Results) Len() int { return len(r.models) }

// Lookup finds a model by name.
func (r *Results) Lookup(name string) (Model, bool) {
	i, ok := r.index[name]
	if !ok {
		return Model{}, false
	}
	return r.models[i], true
}

// Records returns ranking records in file order.
func (r *Results) Records() []ranking.Record {
	out := make([]ranking.Record, len(r.models))
	for i, m := range r.models {
		out[i] = m.Record()
	}
	return out
}

// Load reads, validates and parses a results file.
func Load(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read results file %s: %w", path, err)
	}
	results, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}

// Parse validates data against the results schema and decodes it, keeping
// the member order of the top-level object.
func Parse(data []byte) (*Results, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResults, err)
	}

	results := &Results{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResults, err)
		}
		name, _ := tok.(string)
		if _, dup := results.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate model %q", ErrInvalidResults, name)
		}

		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: model %q: %v", ErrInvalidResults, name, err)
		}
		model, err := decodeModel(name, raw)
		if err != nil {
			return nil, err
		}
		results.index[name] = len(results.models)
		results.models = append(results.models, model)
	}

	if len(results.models) == 0 {
		return nil, ErrNoModels
	}
	return results, nil
}

func decodeModel(name string, raw map[string]json.RawMessage) (Model, error) {
	m := Model{
		Name:    name,
		Metrics: make(map[string]float64),
		Series:  make(map[string][]float64),
	}
	for key, value := range raw {
		switch firstByte(value) {
		case '[':
			var attempts []*float64
			if err := json.Unmarshal(value, &attempts); err != nil {
				return Model{}, fmt.Errorf("%w: model %q field %q: %v", ErrInvalidResults, name, key, err)
			}
			series := make([]float64, len(attempts))
			for i, a := range attempts {
				if a != nil {
					series[i] = *a
				}
			}
			m.Series[key] = series
		case '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return Model{}, fmt.Errorf("%w: model %q field %q: %v", ErrInvalidResults, name, key, err)
			}
			if strings.EqualFold(key, "provider") {
				m.Provider = s
			}
		default:
			var v float64
			if err := json.Unmarshal(value, &v); err != nil {
				return Model{}, fmt.Errorf("%w: model %q field %q: %v", ErrInvalidResults, name, key, err)
			}
			m.Metrics[key] = v
		}
	}
	return m, nil
}

func firstByte(b json.RawMessage) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

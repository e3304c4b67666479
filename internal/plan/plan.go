// Package plan loads dataset build plans from JSON documents. A plan names
// a registered generator and optionally overrides its seed, size, and
// generator parameters; it is schema-validated before any typed config is
// built, so malformed documents fail with a precise location instead of a
// half-applied config.
package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/abhisek/taskgym/internal/dataset"
	"github.com/abhisek/taskgym/internal/registry"
)

// ErrInvalidPlan indicates a plan document failed schema validation or
// refers to parameters the target config does not have.
var ErrInvalidPlan = errors.New("taskgym: invalid plan")

// Plan is one dataset build request.
type Plan struct {
	// Dataset is the registered generator name.
	Dataset string `json:"dataset"`

	// Seed fixes the base seed; omitted means draw one at construction.
	Seed *int64 `json:"seed,omitempty"`

	// Size overrides the generator's default virtual size when positive.
	Size int `json:"size,omitempty"`

	// Params overrides generator-specific config fields, keyed by their
	// JSON names (min_words, operators, ...).
	Params map[string]any `json:"params,omitempty"`
}

// Load reads and parses the plan document at path, validating it against
// the plan schema first.
func Load(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw against the plan schema and decodes it.
func Parse(raw []byte) (Plan, error) {
	if err := validateDocument(raw); err != nil {
		return Plan{}, err
	}
	var p Plan
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return p, nil
}

// Config resolves the plan into a typed config for its generator: the
// registered prototype supplies defaults, then params and the seed/size
// overrides are layered on top. Unknown parameter names are rejected.
func (p Plan) Config(r *registry.Registry) (dataset.Config, error) {
	e, ok := r.Lookup(p.Dataset)
	if !ok {
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownDataset, p.Dataset)
	}

	defaults, err := json.Marshal(e.Config)
	if err != nil {
		return nil, fmt.Errorf("marshal %s defaults: %w", p.Dataset, err)
	}
	merged := map[string]any{}
	if err := json.Unmarshal(defaults, &merged); err != nil {
		return nil, fmt.Errorf("unmarshal %s defaults: %w", p.Dataset, err)
	}
	for k, v := range p.Params {
		merged[k] = v
	}
	if p.Seed != nil {
		merged["seed"] = *p.Seed
	}
	if p.Size > 0 {
		merged["size"] = p.Size
	}

	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("merge %s params: %w", p.Dataset, err)
	}
	cfgPtr := reflect.New(reflect.TypeOf(e.Config))
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfgPtr.Interface()); err != nil {
		return nil, fmt.Errorf("%w: params for %q: %v", ErrInvalidPlan, p.Dataset, err)
	}
	return cfgPtr.Elem().Interface().(dataset.Config), nil
}

// Build resolves the plan's config and constructs the dataset through the
// registry.
func (p Plan) Build(r *registry.Registry) (dataset.Dataset, error) {
	cfg, err := p.Config(r)
	if err != nil {
		return nil, err
	}
	return r.Create(p.Dataset, cfg)
}

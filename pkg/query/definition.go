package query

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

// ConditionSpec is one condition of a Definition, using the field specifier
// syntax accepted by Builder.Where and Builder.Filter
type ConditionSpec struct {
	Field string `yaml:"field" json:"field"`
	Value any    `yaml:"value" json:"value"`
}

// Definition describes a query declaratively
type Definition struct {
	Table            string          `yaml:"table" json:"table"`
	Index            string          `yaml:"index,omitempty" json:"index,omitempty"`
	Where            []ConditionSpec `yaml:"where" json:"where"`
	Filter           []ConditionSpec `yaml:"filter,omitempty" json:"filter,omitempty"`
	Limit            int             `yaml:"limit,omitempty" json:"limit,omitempty"`
	ScanIndexForward *bool           `yaml:"scanIndexForward,omitempty" json:"scanIndexForward,omitempty"`
}

// LoadDefinition decodes a YAML query definition. Unknown keys are rejected.
func LoadDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", dqerrors.ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %v", dqerrors.ErrInvalidDefinition, err)
	}

	return &def, nil
}

// LoadDefinitionFile reads a YAML query definition from path
func LoadDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()

	return LoadDefinition(f)
}

// Builder returns a Builder configured from the definition, applying its
// conditions in the order they are listed
func (d *Definition) Builder(opts ...Option) *Builder {
	b := New(opts...).Table(d.Table)

	if d.Index != "" {
		b.Index(d.Index)
	}
	for _, c := range d.Where {
		b.Where(c.Field, c.Value)
	}
	for _, c := range d.Filter {
		b.Filter(c.Field, c.Value)
	}
	b.Limit(d.Limit)
	if d.ScanIndexForward != nil {
		b.ScanIndexForward(d.ScanIndexForward)
	}

	return b
}

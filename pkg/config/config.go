// Package config loads assumption declarations from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrhapile/mutability-assert/pkg/rules"
)

// File is a set of assumptions declared for one class.
type File struct {
	Class       string        `yaml:"class,omitempty"`
	Assumptions []Declaration `yaml:"assumptions"`

	// Path is the file the declarations were loaded from, if any.
	Path string `yaml:"-"`
}

// Declaration names the fields and the idiom they follow.
type Declaration struct {
	Fields []string `yaml:"fields"`
	Kind   string   `yaml:"kind"`
}

// Load reads and parses an assumptions file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load assumptions %q: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse assumptions %q: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes an assumptions document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Build turns the declarations into assumptions, in declaration order.
func (f *File) Build() ([]rules.Assumption, error) {
	out := make([]rules.Assumption, 0, len(f.Assumptions))
	for i, d := range f.Assumptions {
		a, err := d.Build()
		if err != nil {
			if f.Path != "" {
				return nil, fmt.Errorf("%s: assumption %d: %w", f.Path, i, err)
			}
			return nil, fmt.Errorf("assumption %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Build turns a single declaration into an assumption.
func (d Declaration) Build() (rules.Assumption, error) {
	kind, err := rules.ParseKind(d.Kind)
	if err != nil {
		return rules.Assumption{}, err
	}
	b, err := rules.ForFieldSet(d.Fields)
	if err != nil {
		return rules.Assumption{}, err
	}
	return b.Build(kind)
}

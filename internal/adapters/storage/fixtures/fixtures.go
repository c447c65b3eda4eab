// Package fixtures holds the portal's embedded datasets.
package fixtures

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// Dataset file names.
const (
	Posts    = "posts.yaml"
	Recruit  = "recruit.yaml"
	Activity = "activity.yaml"
	Info     = "info.yaml"
	Home     = "home.yaml"
)

// Decode reads an embedded dataset into out. Unknown fields are rejected.
// PRE: out is a pointer
// POST: out is populated or an error names the dataset
func Decode(name string, out any) error {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("fixture %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("fixture %s: %w", name, err)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/oqs/dimer"
)

// Case is one reference parameter set together with its expected dimension.
type Case struct {
	// Name identifies the case in test output.
	Name string `yaml:"name"`

	// SysSize is the expected operator dimension for Params.NumParticles.
	SysSize int `yaml:"sys_size"`

	// Params are the physical parameters; they also determine fixture names.
	Params dimer.Params `yaml:"params"`
}

// manifest is the top-level layout of a cases file.
type manifest struct {
	Cases []Case `yaml:"cases"`
}

// DecodeCases reads a YAML case manifest. Unknown keys are rejected so a
// misspelled parameter cannot silently fall back to zero.
func DecodeCases(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("fixture.DecodeCases: %w", err)
	}
	for i, c := range m.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("fixture.DecodeCases: case %d: name is required", i)
		}
	}

	return m.Cases, nil
}

// LoadCases reads the case manifest at path.
func LoadCases(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture.LoadCases: %w", err)
	}
	defer f.Close()

	return DecodeCases(f)
}

// Path joins dir with the fixture name of artifact a for this case.
func (c Case) Path(dir string, a Artifact) string {
	return filepath.Join(dir, Name(a, c.Params))
}

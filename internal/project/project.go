// Package project loads and saves the per-directory project manifest,
// arctic.yaml, following the shape of the teacher's "Tawa Module
// Information" file (§4's supplemented project-file feature) but under a
// name and extension that matches this front end's own source file
// naming.
package project

import (
	"os"

	"gopkg.in/yaml.v2"
)

// FileName is the manifest file a project directory is expected to carry
// at its root.
const FileName = "arctic.yaml"

// Manifest is the on-disk shape of arctic.yaml: just enough to name the
// project and the sources that belong to it, mirroring the teacher's
// single-field tawaModule.
type Manifest struct {
	Package string   `yaml:"package"`
	Sources []string `yaml:"sources,omitempty"`
}

// Load reads and parses the manifest at dir/arctic.yaml.
func Load(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(joinPath(dir, FileName))
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, err
	}
	return m, nil
}

// Save writes m to dir/arctic.yaml, creating it if absent.
func Save(dir string, m Manifest) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(joinPath(dir, FileName), out, 0o644)
}

func joinPath(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return dir + string(os.PathSeparator) + name
}

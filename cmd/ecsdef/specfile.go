package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/e6qu/ecsdef/reconcile"
)

// specFile is the desired-state document: a family plus container and
// volume definitions. YAML or JSON; container fields beyond "name" are
// passed through to ECS as-is.
type specFile struct {
	Family     string           `yaml:"family"`
	Containers []reconcile.Spec `yaml:"containers"`
	Volumes    []reconcile.Spec `yaml:"volumes"`
}

func loadSpecFile(path string) (*specFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf specFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &sf, nil
}

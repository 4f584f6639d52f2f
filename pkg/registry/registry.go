// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func Load(path string) (*ModuleCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat ModuleCatalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}

func Save(path string, cat *ModuleCatalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Validate checks the structural invariants of a manifest: unique module
// types and non-empty requirement lists.
func Validate(cat *ModuleCatalog) error {
	if cat.Version == "" {
		return fmt.Errorf("manifest version is empty")
	}
	seen := make(map[string]bool, len(cat.Modules))
	for _, m := range cat.Modules {
		if m.Type == "" {
			return fmt.Errorf("module with empty type")
		}
		if seen[m.Type] {
			return fmt.Errorf("duplicate module type %q", m.Type)
		}
		seen[m.Type] = true
		if len(m.Requirements) == 0 {
			return fmt.Errorf("module %q has no requirements", m.Type)
		}
		if m.Title == "" {
			return fmt.Errorf("module %q has no title", m.Type)
		}
	}
	return nil
}

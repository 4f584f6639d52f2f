// pkg/registry/schema.go
package registry

// ModuleCatalog is the exported manifest of the engine's module catalog.
// Front ends consume it to render module pickers and interview forms without
// linking the engine.
type ModuleCatalog struct {
	Version     string        `json:"version"`
	GeneratedAt string        `json:"generatedAt"`
	Modules     []ModuleEntry `json:"modules"`
}

type ModuleEntry struct {
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Format       string         `json:"format"`
	Focus        string         `json:"focus"`
	Regulations  []string       `json:"regulations"`
	Requirements []string       `json:"requirements"`
	Sections     []SectionEntry `json:"sections"`
	Interview    []FieldEntry   `json:"interview"`
}

type SectionEntry struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

type FieldEntry struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

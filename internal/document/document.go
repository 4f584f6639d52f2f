package document

import (
	"time"

	"grc-docengine/internal/catalog"
)

// Metadata records how and when a document was generated.
type Metadata struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	ModuleType  catalog.ModuleType `json:"moduleType"`
	Regulations []string           `json:"regulations"`
}

// Generated is a fully assembled structured document. It is created once per
// generation call and never mutated afterwards: edits produce a new document
// so DocumentNumber stays a stable identity key.
type Generated struct {
	Title          string             `json:"title"`
	Subtitle       string             `json:"subtitle,omitempty"`
	DocumentNumber string             `json:"documentNumber"`
	Version        string             `json:"version"`
	Date           string             `json:"date"`
	Module         catalog.ModuleType `json:"module"`
	Elements       []Element          `json:"elements"`
	Metadata       Metadata           `json:"metadata"`
}

// Validate checks every element's invariants.
func (d *Generated) Validate() error {
	for _, el := range d.Elements {
		if err := el.Validate(); err != nil {
			return err
		}
	}
	return nil
}

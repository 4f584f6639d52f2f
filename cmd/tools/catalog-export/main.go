// cmd/tools/catalog-export/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"grc-docengine/internal/catalog"
	"grc-docengine/pkg/registry"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	exportPath := exportCmd.String("out", "configs/module-catalog.json", "Output path for the catalog manifest")
	exportVersion := exportCmd.String("version", "1.0.0", "Manifest version")

	validatePath := validateCmd.String("path", "configs/module-catalog.json", "Path to catalog manifest")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		cat := buildCatalog(*exportVersion)
		if err := registry.Save(*exportPath, cat); err != nil {
			fmt.Printf("Error writing manifest: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d modules to %s\n", len(cat.Modules), *exportPath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		cat, err := registry.Load(*validatePath)
		if err != nil {
			fmt.Printf("Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		if err := registry.Validate(cat); err != nil {
			fmt.Printf("Manifest invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Manifest valid: %d modules\n", len(cat.Modules))

	default:
		help()
		os.Exit(1)
	}
}

// buildCatalog flattens the built-in module catalog into its exported form.
func buildCatalog(version string) *registry.ModuleCatalog {
	cat := &registry.ModuleCatalog{
		Version:     version,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, m := range catalog.Registered() {
		tpl := catalog.Template(m)
		req := catalog.Requirements(m)

		entry := registry.ModuleEntry{
			Type:         string(m),
			Title:        tpl.Title,
			Format:       string(tpl.Format),
			Focus:        req.Focus,
			Regulations:  req.Regulations,
			Requirements: req.Requirements,
		}
		for _, s := range tpl.Sections {
			entry.Sections = append(entry.Sections, registry.SectionEntry{
				Name:     s.Name,
				Required: s.Required,
			})
		}
		for _, f := range catalog.Interview(m) {
			field := registry.FieldEntry{
				Name:     f.Name,
				Label:    f.Label,
				Type:     string(f.Type),
				Required: f.Required,
			}
			for _, opt := range f.Options {
				field.Options = append(field.Options, opt.Value)
			}
			entry.Interview = append(entry.Interview, field)
		}
		cat.Modules = append(cat.Modules, entry)
	}
	return cat
}

func help() {
	fmt.Println(`Usage: catalog-export <command> [flags]

Commands:
  export    Write the built-in module catalog as a JSON manifest
  validate  Check a manifest file for structural errors`)
}

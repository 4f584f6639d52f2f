// Package catalog holds the compiled-in compliance catalogs: requirement
// checklists, document templates, interview schemas and the regulation table.
// Each catalog is a total lookup: unknown module types resolve to the policy
// profile so callers never have to handle a miss.
package catalog

// ModuleType is the compliance domain a document belongs to. The set is open:
// any string is accepted as a key, unrecognized keys fall back to
// ModulePolicy on lookup.
type ModuleType string

const (
	ModuleDPIA          ModuleType = "dpia"
	ModuleRoPA          ModuleType = "ropa"
	ModuleDSR           ModuleType = "dsr"
	ModuleIncident      ModuleType = "incident"
	ModuleRisk          ModuleType = "risk"
	ModuleVendor        ModuleType = "vendor"
	ModuleContinuity    ModuleType = "continuity"
	ModuleVulnerability ModuleType = "vulnerability"
	ModulePolicy        ModuleType = "policy"
	ModuleControl       ModuleType = "control"
	ModuleGap           ModuleType = "gap"
	ModuleAudit         ModuleType = "audit"
	ModuleEvidence      ModuleType = "evidence"
	ModuleCompliance    ModuleType = "compliance"
	ModuleObligation    ModuleType = "obligation"
	ModuleDataInventory ModuleType = "data_inventory"
)

// Registered lists every module type carrying its own catalog entries, in a
// stable order.
func Registered() []ModuleType {
	return []ModuleType{
		ModuleDPIA, ModuleRoPA, ModuleDSR, ModuleIncident,
		ModuleRisk, ModuleVendor, ModuleContinuity, ModuleVulnerability,
		ModulePolicy, ModuleControl, ModuleGap, ModuleAudit,
		ModuleEvidence, ModuleCompliance, ModuleObligation, ModuleDataInventory,
	}
}

// IsRegistered reports whether m has dedicated catalog entries.
func IsRegistered(m ModuleType) bool {
	_, ok := requirementProfiles[m]
	return ok
}

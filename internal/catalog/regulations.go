package catalog

// regulationTable is the single source of truth for which regulations and
// standards apply per module type. Both the requirement profiles and the
// generated document metadata derive their regulation lists from here, so the
// two views can never drift apart.
var regulationTable = map[ModuleType][]string{
	ModuleDPIA:          {"UU PDP No. 27/2022", "GDPR Art. 35", "ISO/IEC 29134"},
	ModuleRoPA:          {"GDPR Art. 30", "UU PDP No. 27/2022"},
	ModuleDSR:           {"GDPR Art. 12-23", "UU PDP No. 27/2022"},
	ModuleIncident:      {"UU PDP No. 27/2022", "GDPR Art. 33-34", "ISO/IEC 27035"},
	ModuleRisk:          {"ISO 31000", "ISO/IEC 27005"},
	ModuleVendor:        {"ISO/IEC 27036", "UU PDP No. 27/2022"},
	ModuleContinuity:    {"ISO 22301"},
	ModuleVulnerability: {"ISO/IEC 27001 A.8.8", "NIST SP 800-40"},
	ModulePolicy:        {"ISO/IEC 27001", "UU PDP No. 27/2022"},
	ModuleControl:       {"ISO/IEC 27002"},
	ModuleGap:           {"ISO/IEC 27001", "ISO 19011"},
	ModuleAudit:         {"ISO 19011", "ISO/IEC 27007"},
	ModuleEvidence:      {"ISO/IEC 27001 Cl. 9", "ISO 19011"},
	ModuleCompliance:    {"UU PDP No. 27/2022", "ISO/IEC 27001"},
	ModuleObligation:    {"UU PDP No. 27/2022", "OJK POJK 38/2016"},
	ModuleDataInventory: {"GDPR Art. 30", "UU PDP No. 27/2022"},
}

// Regulations returns the applicable regulations for a module type, falling
// back to the policy list for unknown types. The returned slice is a copy.
func Regulations(m ModuleType) []string {
	regs, ok := regulationTable[m]
	if !ok {
		regs = regulationTable[ModulePolicy]
	}
	out := make([]string, len(regs))
	copy(out, regs)
	return out
}

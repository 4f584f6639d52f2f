package catalog

// DocumentFormat classifies the output style of a generated document.
type DocumentFormat string

const (
	FormatFormal     DocumentFormat = "formal"
	FormatReport     DocumentFormat = "report"
	FormatChecklist  DocumentFormat = "checklist"
	FormatAssessment DocumentFormat = "assessment"
)

// TemplateSection is one named section of a document template.
type TemplateSection struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// TemplateProfile describes how a module's document is laid out.
type TemplateProfile struct {
	Title    string            `json:"title"`
	Format   DocumentFormat    `json:"format"`
	Sections []TemplateSection `json:"sections"`
}

var templateProfiles = map[ModuleType]TemplateProfile{
	ModuleDPIA: {
		Title:  "Data Protection Impact Assessment",
		Format: FormatAssessment,
		Sections: []TemplateSection{
			{Name: "Executive Summary", Required: true},
			{Name: "Processing Details", Required: true},
			{Name: "Necessity and Proportionality", Required: true},
			{Name: "Risk Analysis", Required: true},
			{Name: "Mitigation Measures", Required: true},
			{Name: "Roles and Responsibilities", Required: false},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleRoPA: {
		Title:  "Records of Processing Activities",
		Format: FormatFormal,
		Sections: []TemplateSection{
			{Name: "Processing Overview", Required: true},
			{Name: "Processing Details", Required: true},
			{Name: "Data Transfer and Retention", Required: true},
			{Name: "Security Measures", Required: true},
		},
	},
	ModuleDSR: {
		Title:  "Data Subject Request Report",
		Format: FormatReport,
		Sections: []TemplateSection{
			{Name: "Request Summary", Required: true},
			{Name: "Handling Details", Required: true},
			{Name: "Resolution Timeline", Required: true},
		},
	},
	ModuleIncident: {
		Title:  "Incident Report",
		Format: FormatReport,
		Sections: []TemplateSection{
			{Name: "Incident Summary", Required: true},
			{Name: "Incident Details", Required: true},
			{Name: "Impact Assessment", Required: true},
			{Name: "Response Timeline", Required: true},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleRisk: {
		Title:  "Risk Assessment Report",
		Format: FormatAssessment,
		Sections: []TemplateSection{
			{Name: "Assessment Overview", Required: true},
			{Name: "Risk Analysis", Required: true},
			{Name: "Treatment Details", Required: true},
			{Name: "Monitoring Schedule", Required: false},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleVendor: {
		Title:  "Vendor Assessment Report",
		Format: FormatAssessment,
		Sections: []TemplateSection{
			{Name: "Vendor Overview", Required: true},
			{Name: "Assessment Findings", Required: true},
			{Name: "Risk and Impact", Required: true},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleContinuity: {
		Title:  "Business Continuity Plan",
		Format: FormatFormal,
		Sections: []TemplateSection{
			{Name: "Plan Overview", Required: true},
			{Name: "Impact Analysis", Required: true},
			{Name: "Recovery Details", Required: true},
			{Name: "Roles and Responsibilities", Required: true},
			{Name: "Testing Schedule", Required: false},
		},
	},
	ModuleVulnerability: {
		Title:  "Vulnerability Assessment Report",
		Format: FormatReport,
		Sections: []TemplateSection{
			{Name: "Scan Overview", Required: true},
			{Name: "Findings", Required: true},
			{Name: "Risk Analysis", Required: true},
			{Name: "Remediation Timeline", Required: true},
		},
	},
	ModulePolicy: {
		Title:  "Policy Document",
		Format: FormatFormal,
		Sections: []TemplateSection{
			{Name: "Purpose and Overview", Required: true},
			{Name: "Policy Details", Required: true},
			{Name: "Roles and Responsibilities", Required: true},
			{Name: "Compliance and Enforcement", Required: false},
			{Name: "Review Schedule", Required: false},
		},
	},
	ModuleControl: {
		Title:  "Control Documentation",
		Format: FormatFormal,
		Sections: []TemplateSection{
			{Name: "Control Overview", Required: true},
			{Name: "Implementation Details", Required: true},
			{Name: "Roles and Responsibilities", Required: false},
			{Name: "Effectiveness Review", Required: false},
		},
	},
	ModuleGap: {
		Title:  "Gap Assessment Report",
		Format: FormatAssessment,
		Sections: []TemplateSection{
			{Name: "Assessment Overview", Required: true},
			{Name: "Gap Findings", Required: true},
			{Name: "Risk and Impact", Required: false},
			{Name: "Remediation Timeline", Required: true},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleAudit: {
		Title:  "Audit Report",
		Format: FormatReport,
		Sections: []TemplateSection{
			{Name: "Audit Overview", Required: true},
			{Name: "Audit Findings", Required: true},
			{Name: "Risk Analysis", Required: false},
			{Name: "Corrective Action Timeline", Required: true},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleEvidence: {
		Title:  "Evidence Record",
		Format: FormatChecklist,
		Sections: []TemplateSection{
			{Name: "Evidence Overview", Required: true},
			{Name: "Collection Details", Required: true},
		},
	},
	ModuleCompliance: {
		Title:  "Compliance Report",
		Format: FormatReport,
		Sections: []TemplateSection{
			{Name: "Compliance Summary", Required: true},
			{Name: "Monitoring Details", Required: true},
			{Name: "Findings", Required: true},
			{Name: "Recommendations", Required: false},
		},
	},
	ModuleObligation: {
		Title:  "Regulatory Obligation Register",
		Format: FormatChecklist,
		Sections: []TemplateSection{
			{Name: "Obligation Overview", Required: true},
			{Name: "Obligation Details", Required: true},
			{Name: "Fulfillment Timeline", Required: true},
		},
	},
	ModuleDataInventory: {
		Title:  "Data Inventory Report",
		Format: FormatReport,
		Sections: []TemplateSection{
			{Name: "Inventory Overview", Required: true},
			{Name: "Asset Details", Required: true},
			{Name: "Data Flow and Impact", Required: false},
		},
	},
}

// Template returns the document template for a module type, falling back to
// the policy template for unknown types. Section slices are copies.
func Template(m ModuleType) TemplateProfile {
	profile, ok := templateProfiles[m]
	if !ok {
		profile = templateProfiles[ModulePolicy]
	}
	out := TemplateProfile{
		Title:    profile.Title,
		Format:   profile.Format,
		Sections: make([]TemplateSection, len(profile.Sections)),
	}
	copy(out.Sections, profile.Sections)
	return out
}

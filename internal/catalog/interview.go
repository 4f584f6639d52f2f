package catalog

// FieldType enumerates the input widgets an interview form can render.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
)

// SelectOption is one choice of a select field.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// InterviewField is one typed input of a module's data-collection form. Name
// is unique within its schema and doubles as the answer map key consumed by
// the assembly engine.
type InterviewField struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Type     FieldType      `json:"type"`
	Required bool           `json:"required"`
	Options  []SelectOption `json:"options,omitempty"`
}

// commonFields returns the inputs every interview starts with. The names line
// up with the answer keys the assembly engine reads.
func commonFields() []InterviewField {
	return []InterviewField{
		{Name: "title", Label: "Document Title", Type: FieldText, Required: true},
		{Name: "owner", Label: "Document Owner", Type: FieldText, Required: false},
		{Name: "summary", Label: "Executive Summary", Type: FieldTextarea, Required: true},
		{Name: "details", Label: "Key Details (one per line)", Type: FieldTextarea, Required: false},
		{Name: "content", Label: "Additional Content", Type: FieldTextarea, Required: false},
	}
}

var severityOptions = []SelectOption{
	{Value: "low", Label: "Low"},
	{Value: "medium", Label: "Medium"},
	{Value: "high", Label: "High"},
	{Value: "critical", Label: "Critical"},
}

var interviewExtras = map[ModuleType][]InterviewField{
	ModuleDPIA: {
		{Name: "processing_purpose", Label: "Purpose of Processing", Type: FieldTextarea, Required: true},
		{Name: "data_categories", Label: "Data Categories Involved", Type: FieldTextarea, Required: true},
		{Name: "dpo_consulted", Label: "DPO Consulted", Type: FieldSelect, Required: true, Options: []SelectOption{
			{Value: "yes", Label: "Yes"}, {Value: "no", Label: "No"},
		}},
	},
	ModuleRoPA: {
		{Name: "controller_name", Label: "Data Controller", Type: FieldText, Required: true},
		{Name: "retention_period", Label: "Retention Period", Type: FieldText, Required: true},
		{Name: "third_country_transfer", Label: "Third Country Transfer", Type: FieldSelect, Required: false, Options: []SelectOption{
			{Value: "yes", Label: "Yes"}, {Value: "no", Label: "No"},
		}},
	},
	ModuleDSR: {
		{Name: "request_type", Label: "Request Type", Type: FieldSelect, Required: true, Options: []SelectOption{
			{Value: "access", Label: "Access"},
			{Value: "rectification", Label: "Rectification"},
			{Value: "erasure", Label: "Erasure"},
			{Value: "portability", Label: "Portability"},
			{Value: "objection", Label: "Objection"},
		}},
		{Name: "due_date", Label: "Due Date", Type: FieldDate, Required: true},
	},
	ModuleIncident: {
		{Name: "incident_date", Label: "Incident Date", Type: FieldDate, Required: true},
		{Name: "severity", Label: "Severity", Type: FieldSelect, Required: true, Options: severityOptions},
		{Name: "affected_subjects", Label: "Affected Data Subjects", Type: FieldNumber, Required: false},
	},
	ModuleRisk: {
		{Name: "likelihood", Label: "Likelihood (1-5)", Type: FieldNumber, Required: true},
		{Name: "impact", Label: "Impact (1-5)", Type: FieldNumber, Required: true},
		{Name: "risk_owner", Label: "Risk Owner", Type: FieldText, Required: true},
	},
	ModuleVendor: {
		{Name: "vendor_name", Label: "Vendor Name", Type: FieldText, Required: true},
		{Name: "criticality", Label: "Criticality", Type: FieldSelect, Required: true, Options: severityOptions},
		{Name: "contract_end", Label: "Contract End Date", Type: FieldDate, Required: false},
	},
	ModuleContinuity: {
		{Name: "rto_hours", Label: "Recovery Time Objective (hours)", Type: FieldNumber, Required: true},
		{Name: "rpo_hours", Label: "Recovery Point Objective (hours)", Type: FieldNumber, Required: true},
	},
	ModuleVulnerability: {
		{Name: "scan_date", Label: "Scan Date", Type: FieldDate, Required: true},
		{Name: "severity", Label: "Highest Severity Found", Type: FieldSelect, Required: true, Options: severityOptions},
	},
	ModulePolicy: {
		{Name: "effective_date", Label: "Effective Date", Type: FieldDate, Required: false},
		{Name: "review_cycle", Label: "Review Cycle", Type: FieldSelect, Required: false, Options: []SelectOption{
			{Value: "quarterly", Label: "Quarterly"},
			{Value: "semiannual", Label: "Semi-Annual"},
			{Value: "annual", Label: "Annual"},
		}},
	},
	ModuleControl: {
		{Name: "control_reference", Label: "Standard Reference", Type: FieldText, Required: true},
		{Name: "control_status", Label: "Implementation Status", Type: FieldSelect, Required: true, Options: []SelectOption{
			{Value: "planned", Label: "Planned"},
			{Value: "partial", Label: "Partially Implemented"},
			{Value: "implemented", Label: "Implemented"},
		}},
	},
	ModuleGap: {
		{Name: "baseline_standard", Label: "Baseline Standard", Type: FieldText, Required: true},
	},
	ModuleAudit: {
		{Name: "audit_start", Label: "Audit Start Date", Type: FieldDate, Required: true},
		{Name: "audit_end", Label: "Audit End Date", Type: FieldDate, Required: false},
		{Name: "auditor", Label: "Lead Auditor", Type: FieldText, Required: true},
	},
	ModuleEvidence: {
		{Name: "evidence_source", Label: "Evidence Source", Type: FieldText, Required: true},
		{Name: "valid_until", Label: "Valid Until", Type: FieldDate, Required: false},
	},
	ModuleCompliance: {
		{Name: "reporting_period", Label: "Reporting Period", Type: FieldText, Required: true},
	},
	ModuleObligation: {
		{Name: "regulation_source", Label: "Regulation Source", Type: FieldText, Required: true},
		{Name: "deadline", Label: "Fulfillment Deadline", Type: FieldDate, Required: false},
	},
	ModuleDataInventory: {
		{Name: "system_count", Label: "Number of Systems Covered", Type: FieldNumber, Required: false},
	},
}

// Interview returns the interview schema for a module type, falling back to
// the policy schema for unknown types.
func Interview(m ModuleType) []InterviewField {
	extras, ok := interviewExtras[m]
	if !ok {
		extras = interviewExtras[ModulePolicy]
	}
	fields := commonFields()
	fields = append(fields, extras...)
	return fields
}

// Package onboarding defines the resource types of the onboarding API:
// industries and their roles, KPIs with embedded formula blobs and
// business rule attributes, function blobs, metric function records, and
// dictionary entries. The shapes mirror the remote API exactly; the
// reconciliation pipeline normalizes them into the domain model.
package onboarding

// Industry is one industry (model template) record.
type Industry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// IndustryDetail is the detailed configuration of one industry, as
// returned by /api/industry/{id}.
type IndustryDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
	Roles       []Role  `json:"roles"`
}

// Role is an organizational role attached to an industry.
type Role struct {
	ID              int64   `json:"id"`
	LevelName       string  `json:"levelName"`
	RoleDisplayName string  `json:"role_display_name"`
	Description     *string `json:"description"`
}

// KPIEnvelope is the raw body of /api/industry-all-kpi/{id}. The session
// layer does not unwrap this endpoint, so callers can tell a missing
// payload apart from an industry with zero KPIs.
type KPIEnvelope struct {
	Data []KPI `json:"data"`
}

// KPI is one KPI record. Data carries an embedded JSON blob with the
// formula description and source table; Attributes carries the business
// rule attributes as name/value pairs.
type KPI struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	DisplayName      string            `json:"displayName"`
	FunctionName     string            `json:"functionName"`
	Category         string            `json:"category"`
	Data             string            `json:"data"`
	Attributes       Attributes        `json:"attributes"`
	MetricAttributes []MetricAttribute `json:"metric_attributes"`
}

// Attributes is a KPI's attribute list.
type Attributes []KPIAttribute

// Lookup folds the list into an attributeName to defaultValue map. When a
// name repeats, the later value wins, matching the upstream ordering.
func (a Attributes) Lookup() map[string]*string {
	lookup := make(map[string]*string, len(a))
	for _, attr := range a {
		lookup[attr.AttributeName] = attr.DefaultValue
	}
	return lookup
}

// KPIAttribute is one name/value pair in a KPI's attribute list. A nil
// DefaultValue means the attribute exists without a value.
type KPIAttribute struct {
	AttributeName string  `json:"attributeName"`
	DefaultValue  *string `json:"defaultValue"`
}

// MetricAttribute is one entry of a metric_attributes list. Only the
// count of these is consumed downstream.
type MetricAttribute struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Function is one function blob from /api/function, grouping industry
// function records under a shared name.
type Function struct {
	Name             string             `json:"name"`
	IndustryFunction []IndustryFunction `json:"industry_function"`
}

// IndustryFunction is one industry-level function record.
type IndustryFunction struct {
	ID                    int64   `json:"id"`
	IndustryFunctionMapID int64   `json:"industry_function_map_id"`
	FunctionName          string  `json:"function_name"`
	IndustryName          string  `json:"industry_name"`
	SubType               *string `json:"subType"`
	Name                  string  `json:"name"`
	Description           *string `json:"description"`
	UseCaseID             *int64  `json:"useCaseId"`
}

// ContextType is one record of /api/contextTypes.
type ContextType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
}

// MetricFunction is one record of the industry metric functions feed.
// Context records are the subset where TypeName is "Context".
type MetricFunction struct {
	ID               int64             `json:"id"`
	Name             *string           `json:"name"`
	FunctionName     string            `json:"functionName"`
	TypeName         string            `json:"typeName"`
	FunctionCode     string            `json:"functionCode"`
	Attribute        *string           `json:"attribute"`
	Table            *string           `json:"table"`
	DisplayName      *string           `json:"displayName"`
	Description      *string           `json:"description"`
	Aggregation      *string           `json:"aggregation"`
	ComputeFrequency *string           `json:"compute_frequency"`
	MetricAttributes []MetricAttribute `json:"metric_attributes"`
}

// DictionaryEntry is one dictionary record for a function code. Each
// entry describes a table and its column definitions.
type DictionaryEntry struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Description      *string           `json:"description"`
	FunctionName     *string           `json:"functionName"`
	FunctionCode     *string           `json:"functionCode"`
	SheetType        *string           `json:"sheetType"`
	TableType        *string           `json:"tableType"`
	EntityAttributes []EntityAttribute `json:"entity_attributes"`
}

// EntityAttribute is one column definition inside a dictionary entry.
type EntityAttribute struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DataType    *string `json:"dataType"`
}

package domain

// Context is one normalized context dimension, derived from a metric
// function record whose type marks it as a context. Every field except
// the id is optional upstream; the JSON field names mirror the upstream
// feed where a value is passed through unchanged.
type Context struct {
	ContextID             int64   `json:"context_id"`
	ContextName           *string `json:"context_name"`
	SourceColumnName      *string `json:"source_column_name"`
	FunctionName          string  `json:"functionName"`
	TypeName              string  `json:"typeName"`
	MetricAttributesCount int     `json:"metric_attributes_count"`
	DisplayName           *string `json:"displayName"`
	Description           *string `json:"description"`
	Table                 *string `json:"table"`
	FunctionCode          string  `json:"functionCode"`
	Attribute             *string `json:"attribute"`
	Aggregation           *string `json:"aggregation"`
	ComputeFrequency      *string `json:"compute_frequency"`
}

package reconcile

import (
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// contextTypeName marks the metric-function records that describe
// dimensional context rather than metrics.
const contextTypeName = "Context"

// FilterContexts keeps only the metric-function records typed as context.
func FilterContexts(records []onboarding.MetricFunction) []onboarding.MetricFunction {
	var contexts []onboarding.MetricFunction
	for _, record := range records {
		if record.TypeName == contextTypeName {
			contexts = append(contexts, record)
		}
	}
	return contexts
}

// ContextMap normalizes context records into the domain shape, keyed by ID.
func ContextMap(records []onboarding.MetricFunction) map[int64]domain.Context {
	out := make(map[int64]domain.Context, len(records))
	for _, record := range records {
		out[record.ID] = domain.Context{
			ContextID:             record.ID,
			ContextName:           record.Name,
			SourceColumnName:      record.Attribute,
			FunctionName:          record.FunctionName,
			TypeName:              record.TypeName,
			MetricAttributesCount: len(record.MetricAttributes),
			DisplayName:           record.DisplayName,
			Description:           record.Description,
			Table:                 record.Table,
			FunctionCode:          record.FunctionCode,
			Attribute:             record.Attribute,
			Aggregation:           record.Aggregation,
			ComputeFrequency:      record.ComputeFrequency,
		}
	}
	return out
}

// FunctionCodes returns the distinct function codes of the given records in
// first-appearance order.
func FunctionCodes(records []onboarding.MetricFunction) []string {
	seen := make(map[string]bool, len(records))
	var codes []string
	for _, record := range records {
		if seen[record.FunctionCode] {
			continue
		}
		seen[record.FunctionCode] = true
		codes = append(codes, record.FunctionCode)
	}
	return codes
}

package reconcile

import (
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// FunctionInfo joins the functions observed among KPIs against the raw
// functions feed.
//
// The feed is grouped by function name, then each distinct KPI functionName
// is looked up in the grouping in first-appearance order. A group no KPI
// references contributes nothing, and a KPI functionName with no group is
// skipped silently. Join misses are expected, not errors.
func FunctionInfo(kpis []onboarding.KPI, functions []onboarding.Function) []domain.FunctionDetail {
	groups := make(map[string][]onboarding.IndustryFunction, len(functions))
	for _, fn := range functions {
		groups[fn.Name] = append(groups[fn.Name], fn.IndustryFunction...)
	}

	seen := make(map[string]bool, len(kpis))
	var details []domain.FunctionDetail
	for _, kpi := range kpis {
		if seen[kpi.FunctionName] {
			continue
		}
		seen[kpi.FunctionName] = true
		for _, record := range groups[kpi.FunctionName] {
			details = append(details, domain.FunctionDetail{
				ID:                    record.ID,
				IndustryFunctionMapID: record.IndustryFunctionMapID,
				FunctionName:          record.FunctionName,
				IndustryName:          record.IndustryName,
				SubType:               record.SubType,
				Name:                  record.Name,
				Description:           record.Description,
				UseCaseID:             record.UseCaseID,
			})
		}
	}
	return details
}

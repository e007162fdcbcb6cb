package table

import (
	"strconv"

	"github.com/experienceflow/domainmap/pkg/metricstore"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// IndustriesToTableData converts industry records to table format.
func IndustriesToTableData(industries []onboarding.Industry) Data {
	rows := make([][]string, 0, len(industries))
	for _, industry := range industries {
		rows = append(rows, []string{
			strconv.FormatInt(industry.ID, 10),
			industry.Name,
			dash(industry.DisplayName),
			dash(industry.Category),
		})
	}

	return Data{
		Headers:         []string{"ID", "NAME", "DISPLAY NAME", "CATEGORY"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignDefault, AlignDefault},
	}
}

// ContextTypesToTableData converts context type records to table format.
func ContextTypesToTableData(types []onboarding.ContextType) Data {
	rows := make([][]string, 0, len(types))
	for _, ct := range types {
		description := "-"
		if ct.Description != nil && *ct.Description != "" {
			description = truncate(*ct.Description, 80)
		}
		rows = append(rows, []string{
			strconv.FormatInt(ct.ID, 10),
			ct.Name,
			dash(ct.DisplayName),
			description,
		})
	}

	return Data{
		Headers: []string{"ID", "NAME", "DISPLAY NAME", "DESCRIPTION"},
		Rows:    rows,
	}
}

// KPINamesToTableData converts stored KPI names to a single-column table.
func KPINamesToTableData(names []string) Data {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}

	return Data{
		Headers: []string{"KPI NAME"},
		Rows:    rows,
	}
}

// ProfileToTableData converts a stored KPI profile to a key-value table.
func ProfileToTableData(profile *metricstore.Profile) Data {
	goal := "-"
	if profile.BusinessContext.GoalThresholdPct != nil {
		goal = strconv.FormatFloat(*profile.BusinessContext.GoalThresholdPct, 'f', -1, 64)
	}
	parent := "-"
	if profile.Hierarchy.ParentID != nil {
		parent = strconv.FormatInt(*profile.Hierarchy.ParentID, 10)
	}
	formula := "-"
	if len(profile.CalculationLogic.FormulaDetails) > 0 {
		formula = truncate(string(profile.CalculationLogic.FormulaDetails), 80)
	}

	rows := [][]string{
		{"KPI Name", profile.Identity.KPIName},
		{"Display Name", dash(profile.Identity.DisplayName)},
		{"ID", strconv.FormatInt(profile.Identity.ID, 10)},
		{"Description", dash(profile.Description)},
		{"Formula", formula},
		{"Higher Is Better", strconv.FormatBool(profile.BusinessContext.IsHigherBetter)},
		{"Goal Threshold Pct", goal},
		{"Category", dash(profile.BusinessContext.Category)},
		{"Data Unit", dash(profile.BusinessContext.DataUnit)},
		{"Parent ID", parent},
		{"Context Path", dash(profile.Hierarchy.ContextPath)},
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

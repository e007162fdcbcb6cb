package table

import (
	"sort"
	"strconv"

	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/domain"
)

// ModelToTableData converts an assembled model to a summary table.
func ModelToTableData(model *domain.Model) Data {
	rows := [][]string{
		{"Run ID", model.RunID.String()},
		{"Fetched At", model.FetchedAt.Format(constants.TimeFormatISO8601)},
		{"Industry ID", strconv.FormatInt(model.IndustryID, 10)},
		{"KPIs", strconv.Itoa(len(model.KPIs))},
		{"Contexts", strconv.Itoa(len(model.Contexts))},
		{"Functions", strconv.Itoa(len(model.Functions))},
		{"Function Codes", strconv.Itoa(len(model.FunctionCodes))},
		{"Dictionary Tables", strconv.Itoa(model.TableCount())},
		{"Roles", strconv.Itoa(len(model.Roles))},
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// KPIsToTableData converts normalized KPIs to table format, sorted by id.
func KPIsToTableData(kpis map[int64]domain.KPI, showDetails bool) Data {
	headers := []string{"ID", "KPI", "DISPLAY NAME", "CATEGORY", "GOAL", "DIRECTION", "UNIT", "SOURCE TABLE"}
	if showDetails {
		headers = append(headers, "DESCRIPTION")
	}

	ids := make([]int64, 0, len(kpis))
	for id := range kpis {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(kpis))
	for _, id := range ids {
		kpi := kpis[id]
		row := []string{
			strconv.FormatInt(kpi.KPIID, 10),
			kpi.KPIName,
			kpi.DisplayName,
			kpi.Category,
			formatGoal(kpi.BusinessRules.Goal),
			formatDirection(kpi.BusinessRules.IsHigherBetter),
			dash(kpi.BusinessRules.UnitOfMeasure),
			dash(kpi.Definition.SourceTable),
		}
		if showDetails {
			row = append(row, truncate(kpi.Definition.Description, 80))
		}
		rows = append(rows, row)
	}

	alignment := []Align{
		AlignRight,   // ID
		AlignDefault, // KPI
		AlignDefault, // DISPLAY NAME
		AlignDefault, // CATEGORY
		AlignRight,   // GOAL
		AlignDefault, // DIRECTION
		AlignDefault, // UNIT
		AlignDefault, // SOURCE TABLE
	}
	if showDetails {
		alignment = append(alignment, AlignDefault)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// ContextsToTableData converts normalized contexts to table format, sorted by id.
func ContextsToTableData(contexts map[int64]domain.Context) Data {
	headers := []string{"ID", "CONTEXT", "FUNCTION", "CODE", "SOURCE COLUMN", "TABLE", "ATTRS"}

	ids := make([]int64, 0, len(contexts))
	for id := range contexts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(contexts))
	for _, id := range ids {
		rc := contexts[id]
		rows = append(rows, []string{
			strconv.FormatInt(rc.ContextID, 10),
			dash(rc.ContextName),
			rc.FunctionName,
			rc.FunctionCode,
			dash(rc.SourceColumnName),
			dash(rc.Table),
			strconv.Itoa(rc.MetricAttributesCount),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight,   // ID
			AlignDefault, // CONTEXT
			AlignDefault, // FUNCTION
			AlignDefault, // CODE
			AlignDefault, // SOURCE COLUMN
			AlignDefault, // TABLE
			AlignCenter,  // ATTRS
		},
	}
}

// FunctionsToTableData converts function details to table format.
func FunctionsToTableData(functions []domain.FunctionDetail, showDetails bool) Data {
	headers := []string{"ID", "FUNCTION", "NAME", "INDUSTRY", "MAP ID"}
	if showDetails {
		headers = append(headers, "SUBTYPE", "USE CASE", "DESCRIPTION")
	}

	rows := make([][]string, 0, len(functions))
	for _, fn := range functions {
		row := []string{
			strconv.FormatInt(fn.ID, 10),
			fn.FunctionName,
			fn.Name,
			fn.IndustryName,
			strconv.FormatInt(fn.IndustryFunctionMapID, 10),
		}
		if showDetails {
			useCase := "-"
			if fn.UseCaseID != nil {
				useCase = strconv.FormatInt(*fn.UseCaseID, 10)
			}
			description := "-"
			if fn.Description != nil && *fn.Description != "" {
				description = truncate(*fn.Description, 80)
			}
			row = append(row, dash(fn.SubType), useCase, description)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// TablesToTableData converts dictionary tables to one row per column.
// The table name appears on its first column row only.
func TablesToTableData(tables []domain.Table) Data {
	var rows [][]string
	for _, tbl := range tables {
		if len(tbl.Columns) == 0 {
			rows = append(rows, []string{tbl.TableName, "-", "-"})
			continue
		}
		for i, col := range tbl.Columns {
			name := ""
			if i == 0 {
				name = tbl.TableName
			}
			rows = append(rows, []string{name, col.ColumnName, dash(col.DataType)})
		}
	}

	return Data{
		Headers: []string{"TABLE", "COLUMN", "DATA TYPE"},
		Rows:    rows,
	}
}

// DictionariesToTableData summarizes dictionary tables per function code,
// sorted by code.
func DictionariesToTableData(dictionaries map[string][]domain.Table) Data {
	codes := make([]string, 0, len(dictionaries))
	for code := range dictionaries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var rows [][]string
	for _, code := range codes {
		for _, tbl := range dictionaries[code] {
			rows = append(rows, []string{
				code,
				tbl.TableName,
				strconv.Itoa(len(tbl.Columns)),
			})
		}
	}

	return Data{
		Headers:         []string{"FUNCTION CODE", "TABLE", "COLUMNS"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignDefault, AlignCenter},
	}
}

// RolesToTableData converts organizational roles to table format.
func RolesToTableData(roles []domain.Role) Data {
	rows := make([][]string, 0, len(roles))
	for _, role := range roles {
		rows = append(rows, []string{
			strconv.FormatInt(role.ID, 10),
			role.LevelName,
			role.RoleDisplayName,
		})
	}

	return Data{
		Headers: []string{"ID", "LEVEL", "ROLE"},
		Rows:    rows,
	}
}

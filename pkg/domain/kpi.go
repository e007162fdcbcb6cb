package domain

// KPI is one normalized KPI definition keyed by its upstream id.
type KPI struct {
	KPIID         int64         `json:"kpi_id"`
	KPIName       string        `json:"kpi_name"`
	DisplayName   string        `json:"display_name"`
	Category      string        `json:"category"`
	Definition    Definition    `json:"definition"`
	BusinessRules BusinessRules `json:"business_rules"`
}

// Definition describes where a KPI's value comes from. Description falls
// back to "N/A" when the upstream formula blob carries none; SourceTable
// is nil when the blob names no source table.
type Definition struct {
	Description string  `json:"description"`
	SourceTable *string `json:"source_table"`
}

// BusinessRules are the attribute-derived rules of a KPI. A nil Goal
// means no goal attribute was set upstream; a nil UnitOfMeasure means the
// KPI carries no display unit.
type BusinessRules struct {
	Goal           *float64 `json:"goal"`
	IsHigherBetter bool     `json:"is_higher_better"`
	UnitOfMeasure  *string  `json:"unit_of_measure"`
}

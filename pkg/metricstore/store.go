// Package metricstore defines the read-side collaborator for KPI identity
// and profile lookups against the relational metric-definition store. The
// onboarding pipeline never writes here; implementations are consumed as a
// read source only.
package metricstore

import (
	"context"
	"encoding/json"
)

// Store reads KPI identity and profile data.
type Store interface {
	// KPINames returns the distinct non-empty KPI names known to the store.
	KPINames(ctx context.Context) ([]string, error)

	// KPIProfile returns the structured profile for a KPI name. A name the
	// store does not know yields (nil, nil); absence is not an error.
	KPIProfile(ctx context.Context, kpiName string) (*Profile, error)
}

// Profile is the structured view of one metric definition row joined with
// its category, data unit, and type lookups.
type Profile struct {
	Identity         Identity         `json:"identity"`
	Description      *string          `json:"description"`
	CalculationLogic CalculationLogic `json:"calculation_logic"`
	BusinessContext  BusinessContext  `json:"business_context"`
	Hierarchy        Hierarchy        `json:"hierarchy"`
}

// Identity names the KPI.
type Identity struct {
	DisplayName *string `json:"displayName"`
	KPIName     string  `json:"kpiName"`
	ID          int64   `json:"id"`
}

// CalculationLogic carries the formula document embedded in the metric
// definition row, passed through verbatim.
type CalculationLogic struct {
	FormulaDetails json.RawMessage `json:"formula_details"`
}

// BusinessContext describes how the KPI is evaluated.
type BusinessContext struct {
	IsHigherBetter   bool     `json:"is_higher_better"`
	GoalThresholdPct *float64 `json:"goal_threshold_pct"`
	Category         *string  `json:"category"`
	DataUnit         *string  `json:"data_unit"`
}

// Hierarchy places the KPI in the metric tree.
type Hierarchy struct {
	ParentID    *int64  `json:"parent_id"`
	ContextPath *string `json:"context_path"`
}

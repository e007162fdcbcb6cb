// Package domain defines the normalized domain model assembled from the
// onboarding API: KPI definitions with business rules, context dimensions,
// function details, dictionary tables, and organizational roles. All types
// are JSON-serializable snapshots; nothing here talks to the network.
package domain

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Model is one assembled snapshot of a customer's domain model. Map keys
// marshal sorted; slices preserve first-appearance order. Models are
// transient and rebuilt per run, never cached across runs.
type Model struct {
	RunID         uuid.UUID          `json:"run_id"`
	FetchedAt     utc.Time           `json:"fetched_at"`
	IndustryID    int64              `json:"industry_id"`
	KPIs          map[int64]KPI      `json:"kpis"`
	Contexts      map[int64]Context  `json:"contexts"`
	FunctionCodes []string           `json:"function_codes"`
	Dictionaries  map[string][]Table `json:"dictionaries"`
	Functions     []FunctionDetail   `json:"functions"`
	Roles         []Role             `json:"roles"`
}

// TableCount returns the total number of dictionary tables across all
// function codes.
func (m *Model) TableCount() int {
	count := 0
	for _, tables := range m.Dictionaries {
		count += len(tables)
	}
	return count
}

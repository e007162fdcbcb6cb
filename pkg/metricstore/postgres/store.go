// Package postgres implements metricstore.Store on PostgreSQL using pgx.
package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/experienceflow/domainmap/pkg/errors"
	"github.com/experienceflow/domainmap/pkg/metricstore"
)

// Store reads metric definitions from a PostgreSQL pool.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and returns a ready store.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapStore("connect", err)
	}
	return &Store{pool: pool}, nil
}

// NewStore wraps an existing pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// KPINames returns the distinct non-empty KPI names, sorted for stable
// output.
func (s *Store) KPINames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT kpi_name
		FROM metric_defs
		WHERE kpi_name <> ''
		ORDER BY kpi_name
	`)
	if err != nil {
		return nil, errors.WrapStore("query", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.WrapStore("scan", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapStore("query", err)
	}
	return names, nil
}

// KPIProfile fetches the joined profile row for a KPI name. A name with no
// matching row yields (nil, nil).
func (s *Store) KPIProfile(ctx context.Context, kpiName string) (*metricstore.Profile, error) {
	var row profileRow
	err := s.pool.QueryRow(ctx, `
		SELECT
			m.display_name,
			m.kpi_name,
			m.id,
			m.data -> 'formula' ->> 'description' AS definition,
			m.data -> 'formula' AS formula_details,
			m.is_higher_better,
			m.met_criteria_pct,
			mc.name AS category,
			du.display_name AS data_unit,
			m.parent_id,
			m.ctx_name
		FROM metric_defs m
		LEFT JOIN data_unit_defs du ON m.data_unit_def_id = du.id
		LEFT JOIN metric_categories mc ON m.metric_category_id = mc.id
		LEFT JOIN metric_type_defs mt ON m.type_id = mt.id
		WHERE m.kpi_name = $1
		LIMIT 1
	`, kpiName).Scan(
		&row.DisplayName,
		&row.KPIName,
		&row.ID,
		&row.Definition,
		&row.Formula,
		&row.IsHigherBetter,
		&row.MetCriteriaPct,
		&row.Category,
		&row.DataUnit,
		&row.ParentID,
		&row.CtxName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapStore("query", err)
	}
	return buildProfile(row), nil
}

// profileRow is the flat result of the profile query.
type profileRow struct {
	DisplayName    *string
	KPIName        string
	ID             int64
	Definition     *string
	Formula        []byte
	IsHigherBetter *bool
	MetCriteriaPct *float64
	Category       *string
	DataUnit       *string
	ParentID       *int64
	CtxName        *string
}

// buildProfile maps a flat query row into the structured profile. A NULL
// formula column leaves FormulaDetails nil, which serializes as JSON null.
func buildProfile(row profileRow) *metricstore.Profile {
	profile := &metricstore.Profile{
		Identity: metricstore.Identity{
			DisplayName: row.DisplayName,
			KPIName:     row.KPIName,
			ID:          row.ID,
		},
		Description: row.Definition,
		BusinessContext: metricstore.BusinessContext{
			IsHigherBetter:   row.IsHigherBetter != nil && *row.IsHigherBetter,
			GoalThresholdPct: row.MetCriteriaPct,
			Category:         row.Category,
			DataUnit:         row.DataUnit,
		},
		Hierarchy: metricstore.Hierarchy{
			ParentID:    row.ParentID,
			ContextPath: row.CtxName,
		},
	}
	if len(row.Formula) > 0 {
		profile.CalculationLogic.FormulaDetails = json.RawMessage(row.Formula)
	}
	return profile
}

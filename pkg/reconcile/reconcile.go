// Package reconcile transforms raw onboarding API resources into the
// normalized domain model. Every function here is pure: identical inputs
// produce identical outputs, nothing talks to the network, and slice order
// is deterministic so results are stable across runs.
package reconcile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/errors"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// Attribute names recognized on KPI records.
const (
	attrGoal           = "Goal"
	attrGainIndicator  = "GI"
	attrUnitOfMeasure  = "UOM Display Name"
	gainIndicatorLabel = "more"
)

// formulaBlob is the shape of the JSON document embedded in a KPI's Data
// field. Only the fragments the model needs are decoded.
type formulaBlob struct {
	Formula struct {
		Description *string `json:"description"`
		DataSource  struct {
			Table *string `json:"table"`
		} `json:"data_source"`
	} `json:"formula"`
}

// KPIMap builds the normalized KPI map keyed by KPI ID.
//
// Each record's attribute list is folded into a name lookup, its Data blob
// is decoded as embedded JSON, and the pieces are assembled into a
// domain.KPI. A blob that fails to parse degrades to defaults rather than
// failing the run. A Goal attribute that is present but non-numeric is a
// validation error and aborts the whole pass.
func KPIMap(kpis []onboarding.KPI) (map[int64]domain.KPI, error) {
	out := make(map[int64]domain.KPI, len(kpis))
	for _, kpi := range kpis {
		attrs := kpi.Attributes.Lookup()

		var blob formulaBlob
		_ = json.Unmarshal([]byte(kpi.Data), &blob)

		description := "N/A"
		if blob.Formula.Description != nil {
			description = *blob.Formula.Description
		}

		var goal *float64
		if raw := attrs[attrGoal]; raw != nil {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
			if err != nil {
				return nil, errors.NewValidationError("goal", *raw,
					fmt.Sprintf("non-numeric goal for KPI %d: %q", kpi.ID, *raw))
			}
			goal = &parsed
		}

		gi := attrs[attrGainIndicator]
		higher := gi != nil && strings.EqualFold(*gi, gainIndicatorLabel)

		out[kpi.ID] = domain.KPI{
			KPIID:       kpi.ID,
			KPIName:     kpi.Name,
			DisplayName: kpi.DisplayName,
			Category:    kpi.Category,
			Definition: domain.Definition{
				Description: description,
				SourceTable: blob.Formula.DataSource.Table,
			},
			BusinessRules: domain.BusinessRules{
				Goal:           goal,
				IsHigherBetter: higher,
				UnitOfMeasure:  attrs[attrUnitOfMeasure],
			},
		}
	}
	return out, nil
}

package domainmap

import (
	"context"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/logging"
	"github.com/experienceflow/domainmap/pkg/onboarding"
	"github.com/experienceflow/domainmap/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Assembler = (*client)(nil)

// Assembler runs the full model assembly pipeline.
type Assembler interface {
	// Assemble authenticates, fetches every resource feed, and reconciles
	// them into one normalized model. The first error aborts the run.
	Assemble(ctx context.Context) (*domain.Model, error)
}

// Assemble runs the pipeline: authenticate, mint the customer token, fetch
// KPIs, functions, roles, and contexts, then one dictionary per distinct
// function code, and reconcile everything into a Model.
func (c *client) Assemble(ctx context.Context) (*domain.Model, error) {
	runID := uuid.New()
	fetchedAt := utc.Now()
	industryID := c.options.industryID

	ctx = c.prepare(ctx)
	ctx = logging.WithRunID(ctx, runID.String())
	ctx = logging.WithIndustry(ctx, industryID)
	log := logging.Ctx(ctx)

	log.Info().Msg("authenticating partner and customer tokens")
	auth := c.gateway.Auth()
	if err := auth.Authenticate(ctx); err != nil {
		return nil, err
	}
	if err := auth.MintCustomerToken(ctx, c.options.customerEmail); err != nil {
		return nil, err
	}

	log.Info().Msg("querying KPIs")
	envelope, err := c.gateway.KPIs(ctx, industryID)
	if err != nil {
		return nil, err
	}
	var rawKPIs []onboarding.KPI
	if envelope == nil || len(envelope.Data) == 0 {
		log.Warn().Msg("no KPIs found in payload")
	} else {
		rawKPIs = envelope.Data
		log.Info().Int("count", len(rawKPIs)).Msg("KPIs fetched")
	}

	kpis, err := reconcile.KPIMap(rawKPIs)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("querying functions")
	functions, err := c.gateway.Functions(ctx)
	if err != nil {
		return nil, err
	}
	functionInfo := reconcile.FunctionInfo(rawKPIs, functions)

	log.Info().Msg("querying roles")
	detail, err := c.gateway.IndustryDetails(ctx, industryID)
	if err != nil {
		return nil, err
	}
	roles := reconcile.Roles(detail)

	log.Info().Msg("querying contexts")
	records, err := c.gateway.IndustryMetricFunctions(ctx, industryID)
	if err != nil {
		return nil, err
	}
	contexts := reconcile.FilterContexts(records)
	log.Info().Int("count", len(contexts)).Msg("contexts found")

	codes := reconcile.FunctionCodes(contexts)
	dictionaries := make(map[string][]domain.Table, len(codes))
	for _, code := range codes {
		log.Info().Str("function_code", code).Msg("querying dictionary")
		entries, err := c.gateway.Dictionary(ctx, code)
		if err != nil {
			return nil, err
		}
		dictionaries[code] = reconcile.Tables(entries)
	}

	model := &domain.Model{
		RunID:         runID,
		FetchedAt:     fetchedAt,
		IndustryID:    industryID,
		KPIs:          kpis,
		Contexts:      reconcile.ContextMap(contexts),
		FunctionCodes: codes,
		Dictionaries:  dictionaries,
		Functions:     functionInfo,
		Roles:         roles,
	}

	log.Info().
		Int("kpis", len(model.KPIs)).
		Int("contexts", len(model.Contexts)).
		Int("functions", len(model.Functions)).
		Int("tables", model.TableCount()).
		Msg("domain model assembled")
	return model, nil
}

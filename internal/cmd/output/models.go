// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"

	"github.com/experienceflow/domainmap/internal/cmd/constants"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/table"
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/metricstore"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// FormatModel handles the common pattern of formatting an assembled model.
// Table formats show a summary; structured formats emit the full model.
func FormatModel(model *domain.Model, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.ModelToTableData(model)
	default:
		outputData = model
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatKPIs handles the common pattern of formatting normalized KPIs.
func FormatKPIs(kpis map[int64]domain.KPI, showDetails bool, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.KPIsToTableData(kpis, showDetails)
	default:
		outputData = kpis
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatContexts handles the common pattern of formatting normalized contexts.
func FormatContexts(contexts map[int64]domain.Context, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.ContextsToTableData(contexts)
	default:
		outputData = contexts
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatFunctions handles the common pattern of formatting function details.
func FormatFunctions(functions []domain.FunctionDetail, showDetails bool, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.FunctionsToTableData(functions, showDetails)
	default:
		outputData = functions
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatTables handles the common pattern of formatting dictionary tables
// for a single function code.
func FormatTables(tables []domain.Table, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.TablesToTableData(tables)
	default:
		outputData = tables
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatDictionaries summarizes dictionary tables across function codes.
func FormatDictionaries(dictionaries map[string][]domain.Table, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.DictionariesToTableData(dictionaries)
	default:
		outputData = dictionaries
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatRoles handles the common pattern of formatting organizational roles.
func FormatRoles(roles []domain.Role, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.RolesToTableData(roles)
	default:
		outputData = roles
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatIndustries handles the common pattern of formatting industry records.
func FormatIndustries(industries []onboarding.Industry, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.IndustriesToTableData(industries)
	default:
		outputData = industries
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatContextTypes handles the common pattern of formatting context types.
func FormatContextTypes(types []onboarding.ContextType, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.ContextTypesToTableData(types)
	default:
		outputData = types
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatKPINames handles the common pattern of formatting stored KPI names.
func FormatKPINames(names []string, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.KPINamesToTableData(names)
	default:
		outputData = names
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatProfile handles the common pattern of formatting a stored KPI profile.
func FormatProfile(profile *metricstore.Profile, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.ProfileToTableData(profile)
	default:
		outputData = profile
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(os.Stdout, data)
}

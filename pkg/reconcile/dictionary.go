package reconcile

import (
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// Tables reshapes dictionary entries into table definitions, keeping only
// the table name and its column name/type pairs.
func Tables(entries []onboarding.DictionaryEntry) []domain.Table {
	tables := make([]domain.Table, 0, len(entries))
	for _, entry := range entries {
		columns := make([]domain.Column, 0, len(entry.EntityAttributes))
		for _, attr := range entry.EntityAttributes {
			columns = append(columns, domain.Column{
				ColumnName: attr.Name,
				DataType:   attr.DataType,
			})
		}
		tables = append(tables, domain.Table{
			TableName: entry.Name,
			Columns:   columns,
		})
	}
	return tables
}

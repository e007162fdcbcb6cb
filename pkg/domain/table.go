package domain

// Table is the reshaped view of one dictionary entry: the table name and
// its column definitions, nothing else.
type Table struct {
	TableName string   `json:"table_name"`
	Columns   []Column `json:"columns"`
}

// Column is one column definition of a dictionary table.
type Column struct {
	ColumnName string  `json:"column_name"`
	DataType   *string `json:"data_type"`
}

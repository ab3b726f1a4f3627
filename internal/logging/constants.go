package logging

// Field names shared by every component so that log output stays filterable.
const (
	FieldFile        = "file_path"
	FieldRow         = "row"
	FieldReason      = "reason"
	FieldRunID       = "run_id"
	FieldCategory    = "category"
	FieldKeyword     = "keyword"
	FieldDescription = "description"
	FieldMonth       = "month"
	FieldMissing     = "missing_columns"
	FieldCount       = "count"
	FieldSkipped     = "skipped"
	FieldFormat      = "format"
	FieldDelimiter   = "delimiter"
	FieldOutputFile  = "output_file"
	FieldComponent   = "component"
)

package logging

// Standard field names for consistent logging across the application.
const (
	// FieldRunID is the unique identifier of one report run.
	FieldRunID = "run_id"

	// FieldHost is the Prism address being queried.
	FieldHost = "host"

	// FieldResource is the Prism API resource of a request.
	FieldResource = "resource"

	// FieldCluster is the cluster name once known.
	FieldCluster = "cluster"

	// FieldOutput is the path of the written report.
	FieldOutput = "output"

	// FieldFormat is the report format.
	FieldFormat = "format"

	// FieldErrorKind is the classified failure kind.
	FieldErrorKind = "error_kind"

	// FieldConfig is the redacted effective configuration.
	FieldConfig = "config"
)

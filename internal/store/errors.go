package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPatientNotFound is returned when a query or update targets a patient
	// id that does not exist in the database.
	ErrPatientNotFound = errors.New("patient was not found")

	// ErrCedulaAlreadyExists is returned when an INSERT or UPDATE violates the
	// unique constraint on pacientes.cedula. It covers the race between the
	// uniqueness probe and the write.
	ErrCedulaAlreadyExists = errors.New("cedula already exists")

	// ErrUnsupportedDSN is returned by NewConnect when the DSN scheme matches
	// no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan patient row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan patient rows")
)

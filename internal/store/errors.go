package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by id, login or email matches
	// no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned on a unique violation of username,
	// email or mobile number.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserHasDependents is returned when a user still owns companies, jobs
	// or applications that reference it.
	ErrUserHasDependents = errors.New("user still owns companies or jobs")

	// ErrCompanyNotFound is returned when no company matches the id or name.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyAlreadyExists is returned on a unique violation of the company
	// name or email index.
	ErrCompanyAlreadyExists = errors.New("company already exists")

	// ErrJobNotFound is returned when no job matches the id.
	ErrJobNotFound = errors.New("job not found")

	// ErrApplicationAlreadyExists is returned when the user already applied
	// to the job.
	ErrApplicationAlreadyExists = errors.New("application already exists")

	// ErrReferenceNotFound is returned on a foreign key violation: the
	// referenced job, company or user does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrInvalidOTP is returned when the recovery code does not match, has
	// expired or was already used.
	ErrInvalidOTP = errors.New("invalid or expired otp")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCache is returned when the Redis backend fails.
	ErrCache = errors.New("cache error")
)

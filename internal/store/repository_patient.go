package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/models"
)

// patientRepository is the SQL implementation of [PatientRepository]. It
// runs against the "pacientes" table on either backend; queries are built
// with squirrel using the placeholder format of the connection's dialect.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
// Cédulas are never logged by this layer.
type patientRepository struct {
	*DB
	logger *logger.Logger
}

// NewPatientRepository constructs a [PatientRepository] backed by db.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating patient repository")
	return &patientRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts p and returns the stored row.
//
// Error handling:
//   - unique violation on cedula → [ErrCedulaAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *patientRepository) Create(ctx context.Context, p models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPatientQuery(r.builder(), p)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.Create").Msg("failed to create query")
		return models.Patient{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var created models.Patient
	if err = scanPatient(r.DB.QueryRowContext(ctx, query, args...), &created); err != nil {
		if r.isUniqueViolation(err) {
			log.Warn().Str("func", "patientRepository.Create").Msg("cedula already stored")
			return models.Patient{}, ErrCedulaAlreadyExists
		}
		log.Err(err).Str("func", "patientRepository.Create").Msg("failed to insert patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetByID returns the patient with id or [ErrPatientNotFound].
func (r *patientRepository) GetByID(ctx context.Context, id int64) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPatientByIDQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.GetByID").Int64("id", id).Msg("failed to create query")
		return models.Patient{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var found models.Patient
	err = r.retryRead(ctx, func(ctx context.Context) error {
		return scanPatient(r.DB.QueryRowContext(ctx, query, args...), &found)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "patientRepository.GetByID").Int64("id", id).Msg("failed to get patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// List returns the patients matching filter ordered by id. An empty result
// is an empty, non-nil slice.
func (r *patientRepository) List(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPatientsQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.List").Msg("failed to create query")
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var results []models.Patient
	err = r.retryRead(ctx, func(ctx context.Context) error {
		var listErr error
		results, listErr = r.queryPatients(ctx, query, args)
		return listErr
	})
	if err != nil {
		log.Err(err).Str("func", "patientRepository.List").Msg("failed to list patients")
		return nil, err
	}

	return results, nil
}

func (r *patientRepository) queryPatients(ctx context.Context, query string, args []any) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Patient, 0, 50)
	for rows.Next() {
		var p models.Patient
		if scanErr := scanPatient(rows, &p); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update overwrites nombre, cedula, correo, edad and direccion of the
// patient with p.ID and returns the stored row.
func (r *patientRepository) Update(ctx context.Context, p models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePatientQuery(r.builder(), p)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.Update").Int64("id", p.ID).Msg("failed to create query")
		return models.Patient{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var updated models.Patient
	err = scanPatient(r.DB.QueryRowContext(ctx, query, args...), &updated)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Patient{}, ErrPatientNotFound
	case r.isUniqueViolation(err):
		log.Warn().Str("func", "patientRepository.Update").Int64("id", p.ID).Msg("cedula already stored")
		return models.Patient{}, ErrCedulaAlreadyExists
	default:
		log.Err(err).Str("func", "patientRepository.Update").Int64("id", p.ID).Msg("failed to update patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// ToggleActive flips activo for id and returns the new value.
func (r *patientRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildToggleActiveQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.ToggleActive").Int64("id", id).Msg("failed to create query")
		return false, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var active bool
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrPatientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "patientRepository.ToggleActive").Int64("id", id).Msg("failed to toggle patient")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return active, nil
}

// Delete removes the patient with id or returns [ErrPatientNotFound].
func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePatientQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.Delete").Int64("id", id).Msg("failed to create query")
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.Delete").Int64("id", id).Msg("failed to delete patient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "patientRepository.Delete").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// CedulaExists reports whether a patient with cedula is stored. The
// comparison is exact; callers pass the trimmed number.
func (r *patientRepository) CedulaExists(ctx context.Context, cedula string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCedulaExistsQuery(r.builder(), cedula)
	if err != nil {
		log.Err(err).Str("func", "patientRepository.CedulaExists").Msg("failed to create query")
		return false, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// a failed probe is reported once, never retried
	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "patientRepository.CedulaExists").Msg("failed to count cedula")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *patientRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.DB.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPatient reads a row in [patientColumns] order.
func scanPatient(row rowScanner, p *models.Patient) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Cedula,
		&p.Email,
		&p.Age,
		&p.Address,
		&p.Active,
		timestamp{&p.RegisteredAt},
	)
}

// timestamp scans fecha_registro from either driver. go-sqlite3 returns
// text when the column type is not declared, which is the case for
// RETURNING clauses.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", value)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

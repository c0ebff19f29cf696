package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-patient-registry/models"
)

const patientsTable = "pacientes"

// patientColumns is the column order every patient scan relies on.
var patientColumns = []string{
	"id",
	"nombre",
	"cedula",
	"correo",
	"edad",
	"direccion",
	"activo",
	"fecha_registro",
}

var returningPatient = "RETURNING " + strings.Join(patientColumns, ", ")

func buildInsertPatientQuery(b sq.StatementBuilderType, p models.Patient) (string, []any, error) {
	query, args, err := b.Insert(patientsTable).
		Columns("nombre", "cedula", "correo", "edad", "direccion", "activo").
		Values(p.Name, p.Cedula, p.Email, p.Age, p.Address, p.Active).
		Suffix(returningPatient).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPatientByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(patientColumns...).
		From(patientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPatientsQuery filters by activo when set and by filter.Query,
// which matches a case-insensitive substring of nombre or a cedula prefix.
func buildListPatientsQuery(b sq.StatementBuilderType, filter models.PatientFilter) (string, []any, error) {
	qb := b.Select(patientColumns...).From(patientsTable)

	if filter.Active != nil {
		qb = qb.Where(sq.Eq{"activo": *filter.Active})
	}

	if search := strings.TrimSpace(filter.Query); search != "" {
		qb = qb.Where(sq.Or{
			sq.Like{"LOWER(nombre)": "%" + strings.ToLower(search) + "%"},
			sq.Like{"cedula": search + "%"},
		})
	}

	qb = qb.OrderBy("id")

	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		qb = qb.Offset(filter.Offset)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePatientQuery leaves activo and fecha_registro untouched.
func buildUpdatePatientQuery(b sq.StatementBuilderType, p models.Patient) (string, []any, error) {
	query, args, err := b.Update(patientsTable).
		Set("nombre", p.Name).
		Set("cedula", p.Cedula).
		Set("correo", p.Email).
		Set("edad", p.Age).
		Set("direccion", p.Address).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returningPatient).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildToggleActiveQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Update(patientsTable).
		Set("activo", sq.Expr("NOT activo")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING activo").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePatientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(patientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCedulaExistsQuery(b sq.StatementBuilderType, cedula string) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").
		From(patientsTable).
		Where(sq.Eq{"cedula": cedula}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthcare_back_end_go/models"
)

const patientColumns = "id, user_id, first_name, last_name, age, gender, address, phone_number, created_at, updated_at"

func scanPatient(row interface{ Scan(dest ...interface{}) error }) (*models.Patient, error) {
	var p models.Patient
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Age,
		&p.Gender, &p.Address, &p.PhoneNumber, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (s *Store) CreatePatient(ctx context.Context, p *models.Patient) error {
	p.ID = uuid.New().String()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.pool.Exec(ctx, `
		INSERT INTO patients (id, user_id, first_name, last_name, age, gender, address, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Age, p.Gender, p.Address, p.PhoneNumber, p.CreatedAt, p.UpdatedAt)
	return mapError(err)
}

// GetPatientByID resolves a patient regardless of owner. Handlers use it
// where an ownership mismatch answers 403 instead of 404.
func (s *Store) GetPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return scanPatient(s.pool.QueryRow(ctx,
		"SELECT "+patientColumns+" FROM patients WHERE id = $1", id))
}

func (s *Store) GetPatientForOwner(ctx context.Context, id, ownerID string) (*models.Patient, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return scanPatient(s.pool.QueryRow(ctx,
		"SELECT "+patientColumns+" FROM patients WHERE id = $1 AND user_id = $2", id, ownerID))
}

func (s *Store) ListPatientsByOwner(ctx context.Context, ownerID string) ([]models.Patient, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+patientColumns+" FROM patients WHERE user_id = $1 ORDER BY created_at", ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *p)
	}
	return patients, mapError(rows.Err())
}

func (s *Store) UpdatePatient(ctx context.Context, id string, upd *models.PatientUpdateRequest) (*models.Patient, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.FirstName != nil {
		set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		set("last_name", *upd.LastName)
	}
	if upd.Age != nil {
		set("age", *upd.Age)
	}
	if upd.Gender != nil {
		set("gender", *upd.Gender)
	}
	if upd.Address != nil {
		set("address", *upd.Address)
	}
	if upd.PhoneNumber != nil {
		set("phone_number", *upd.PhoneNumber)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE patients SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), patientColumns)
	return scanPatient(s.pool.QueryRow(ctx, query, args...))
}

func (s *Store) DeletePatientForOwner(ctx context.Context, id, ownerID string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM patients WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

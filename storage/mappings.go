package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthcare_back_end_go/models"
)

const mappingColumns = "id, patient_id, doctor_id, assigned_date"

func scanMapping(row interface{ Scan(dest ...interface{}) error }) (*models.PatientDoctorMapping, error) {
	var m models.PatientDoctorMapping
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.AssignedDate)
	if err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

// CreateMapping checks for an existing (patient, doctor) pair and inserts
// inside one transaction. A concurrent insert of the same pair trips the
// composite unique constraint and surfaces as ErrDuplicate as well.
func (s *Store) CreateMapping(ctx context.Context, patientID, doctorID string) (*models.PatientDoctorMapping, error) {
	m := &models.PatientDoctorMapping{
		PatientID:    patientID,
		DoctorID:     doctorID,
		AssignedDate: time.Now().UTC(),
	}
	m.ID = uuid.New().String()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM patient_doctor_mappings WHERE patient_id = $1 AND doctor_id = $2)",
		patientID, doctorID).Scan(&exists)
	if err != nil {
		return nil, mapError(err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO patient_doctor_mappings (id, patient_id, doctor_id, assigned_date)
		VALUES ($1, $2, $3, $4)`,
		m.ID, m.PatientID, m.DoctorID, m.AssignedDate)
	if err != nil {
		return nil, mapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (s *Store) GetMappingByID(ctx context.Context, id string) (*models.PatientDoctorMapping, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return scanMapping(s.pool.QueryRow(ctx,
		"SELECT "+mappingColumns+" FROM patient_doctor_mappings WHERE id = $1", id))
}

// ListMappingsByOwner returns mappings whose patient belongs to ownerID,
// optionally narrowed to one patient. The patient filter applies inside
// the owner join; a foreign patient id yields an empty list.
func (s *Store) ListMappingsByOwner(ctx context.Context, ownerID, patientID string) ([]models.PatientDoctorMapping, error) {
	query := `
		SELECT m.id, m.patient_id, m.doctor_id, m.assigned_date
		FROM patient_doctor_mappings m
		JOIN patients p ON p.id = m.patient_id
		WHERE p.user_id = $1`
	args := []interface{}{ownerID}

	if patientID != "" {
		id, err := parseID(patientID)
		if err != nil {
			return []models.PatientDoctorMapping{}, nil
		}
		args = append(args, id)
		query += " AND m.patient_id = $2"
	}
	query += " ORDER BY m.assigned_date"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	mappings := []models.PatientDoctorMapping{}
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, *m)
	}
	return mappings, mapError(rows.Err())
}

func (s *Store) DeleteMapping(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, "DELETE FROM patient_doctor_mappings WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

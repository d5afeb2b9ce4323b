package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthcare_back_end_go/models"
)

const doctorColumns = "id, first_name, last_name, specialty, experience_years, medical_license, created_at, updated_at"

func scanDoctor(row interface{ Scan(dest ...interface{}) error }) (*models.Doctor, error) {
	var d models.Doctor
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialty,
		&d.ExperienceYears, &d.MedicalLicense, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

func (s *Store) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	d.ID = uuid.New().String()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := s.pool.Exec(ctx, `
		INSERT INTO doctors (id, first_name, last_name, specialty, experience_years, medical_license, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.FirstName, d.LastName, d.Specialty, d.ExperienceYears, d.MedicalLicense, d.CreatedAt, d.UpdatedAt)
	return mapError(err)
}

func (s *Store) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return scanDoctor(s.pool.QueryRow(ctx,
		"SELECT "+doctorColumns+" FROM doctors WHERE id = $1", id))
}

func (s *Store) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+doctorColumns+" FROM doctors ORDER BY created_at")
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *d)
	}
	return doctors, mapError(rows.Err())
}

func (s *Store) UpdateDoctor(ctx context.Context, id string, upd *models.DoctorUpdateRequest) (*models.Doctor, error) {
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
	if upd.Specialty != nil {
		set("specialty", *upd.Specialty)
	}
	if upd.ExperienceYears != nil {
		set("experience_years", *upd.ExperienceYears)
	}
	if upd.MedicalLicense != nil {
		set("medical_license", *upd.MedicalLicense)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE doctors SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), doctorColumns)
	return scanDoctor(s.pool.QueryRow(ctx, query, args...))
}

func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, "DELETE FROM doctors WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

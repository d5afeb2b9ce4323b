package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// InitDatabase connects the pool and bootstraps the schema. The handlers'
// duplicate errors originate from the uniqueness constraints here: username,
// medical_license and the (patient_id, doctor_id) pair.
func InitDatabase(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	pool, err := pgxpool.ConnectConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlQueries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY,
			username VARCHAR(150) UNIQUE NOT NULL,
			email VARCHAR(254) NOT NULL,
			hashed_password VARCHAR(128) NOT NULL,
			is_staff BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS patients (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			age INTEGER NOT NULL,
			gender VARCHAR(20) NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone_number VARCHAR(20) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS doctors (
			id uuid PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			specialty VARCHAR(100) NOT NULL,
			experience_years INTEGER NOT NULL DEFAULT 0,
			medical_license VARCHAR(50) UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS patient_doctor_mappings (
			id uuid PRIMARY KEY,
			patient_id uuid NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
			doctor_id uuid NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
			assigned_date TIMESTAMPTZ NOT NULL,
			UNIQUE (patient_id, doctor_id)
		)`,
	}

	for _, query := range sqlQueries {
		if _, err := pool.Exec(ctx, query); err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	return pool, nil
}

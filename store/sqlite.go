package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arbazmubasher1/HygieneChecklist/config"
	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// ErrNotFound is returned by Get for an unknown record ID.
var ErrNotFound = errors.New("record not found")

type SQLite struct {
	db *sql.DB
}

// Open opens the SQLite file, applies migrations and seeds the per-branch
// inspector accounts.
func Open(cfg config.Config) (s *SQLite, err error) {
	db, err := sql.Open("sqlite3", cfg.DBUrl)
	if err != nil {
		return
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return
	}

	err = seedInspectors(db, cfg.InspectorPassword)
	if err != nil {
		db.Close()
		return
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for the credentials verifier.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// Add writes one record to the hygiene_checklist table. Group maps and the
// remarks map are stored as JSON text, mirroring the document shape.
func (s *SQLite) Add(ctx context.Context, record model.SubmissionRecord) (string, error) {
	grooming, err := marshalSelections(record.Grooming)
	if err != nil {
		return "", fmt.Errorf("store: encode grooming: %w", err)
	}
	remarks, err := json.Marshal(record.Remarks)
	if err != nil {
		return "", fmt.Errorf("store: encode remarks: %w", err)
	}
	safety, err := marshalSelections(record.SafetyChecks)
	if err != nil {
		return "", fmt.Errorf("store: encode safety_checks: %w", err)
	}
	documents, err := marshalSelections(record.Documents)
	if err != nil {
		return "", fmt.Errorf("store: encode documents: %w", err)
	}
	bike, err := marshalSelections(record.BikeInspection)
	if err != nil {
		return "", fmt.Errorf("store: encode bike_inspection: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO hygiene_checklist (
			id, branch, employee_type, shift, date, gender, role_type,
			employee_id, employee_name, manager_name,
			grooming, remarks, safety_checks, documents, bike_inspection,
			score_correct, score_total, score_percentage,
			employee_photo_url, bike_photo_url, manager_signature_url,
			submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		record.Branch,
		record.EmployeeType,
		record.Shift,
		record.Date,
		record.Gender,
		record.Role,
		record.EmployeeID,
		record.EmployeeName,
		record.ManagerName,
		string(grooming),
		string(remarks),
		nullable(safety),
		nullable(documents),
		nullable(bike),
		record.Score.Correct,
		record.Score.Total,
		record.Score.Percentage,
		nullableString(record.EmployeePhotoURL),
		nullableString(record.BikePhotoURL),
		nullableString(record.ManagerSignatureURL),
		record.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("store: insert record: %w", err)
	}
	return id, nil
}

// Get reads one record back by ID.
func (s *SQLite) Get(ctx context.Context, id string) (record model.SubmissionRecord, err error) {
	var (
		grooming, remarks            string
		safety, documents, bike      sql.NullString
		photoURL, bikeURL, signature sql.NullString
		submittedAt                  string
	)
	err = s.db.QueryRowContext(ctx, `
		SELECT
			id, branch, employee_type, shift, date, gender, role_type,
			employee_id, employee_name, manager_name,
			grooming, remarks, safety_checks, documents, bike_inspection,
			score_correct, score_total, score_percentage,
			employee_photo_url, bike_photo_url, manager_signature_url,
			submitted_at
		FROM hygiene_checklist
		WHERE id = ?`,
		id,
	).Scan(
		&record.ID,
		&record.Branch,
		&record.EmployeeType,
		&record.Shift,
		&record.Date,
		&record.Gender,
		&record.Role,
		&record.EmployeeID,
		&record.EmployeeName,
		&record.ManagerName,
		&grooming,
		&remarks,
		&safety,
		&documents,
		&bike,
		&record.Score.Correct,
		&record.Score.Total,
		&record.Score.Percentage,
		&photoURL,
		&bikeURL,
		&signature,
		&submittedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
		return
	}
	if err != nil {
		err = fmt.Errorf("store: get record: %w", err)
		return
	}

	record.Grooming, err = unmarshalSelections(grooming)
	if err != nil {
		err = fmt.Errorf("store: decode grooming: %w", err)
		return
	}
	err = json.Unmarshal([]byte(remarks), &record.Remarks)
	if err != nil {
		err = fmt.Errorf("store: decode remarks: %w", err)
		return
	}
	if safety.Valid {
		record.SafetyChecks, err = unmarshalSelections(safety.String)
		if err != nil {
			err = fmt.Errorf("store: decode safety_checks: %w", err)
			return
		}
	}
	if documents.Valid {
		record.Documents, err = unmarshalSelections(documents.String)
		if err != nil {
			err = fmt.Errorf("store: decode documents: %w", err)
			return
		}
	}
	if bike.Valid {
		record.BikeInspection, err = unmarshalSelections(bike.String)
		if err != nil {
			err = fmt.Errorf("store: decode bike_inspection: %w", err)
			return
		}
	}
	record.EmployeePhotoURL = photoURL.String
	record.BikePhotoURL = bikeURL.String
	record.ManagerSignatureURL = signature.String

	record.SubmittedAt, err = time.Parse(time.RFC3339, submittedAt)
	if err != nil {
		err = fmt.Errorf("store: decode submitted_at: %w", err)
	}
	return
}

func marshalSelections(m map[string]model.Selection) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalSelections(s string) (m map[string]model.Selection, err error) {
	err = json.Unmarshal([]byte(s), &m)
	return
}

func nullable(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

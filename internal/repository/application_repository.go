package repository

import (
	"context"
	"errors"
	"strings"

	"resume-match/internal/database"
	"resume-match/internal/domain/application"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationRepository interface {
	AddApplication(ctx context.Context, rec application.Record) (int64, error)
	GetApplications(ctx context.Context, status application.Status) ([]application.Record, error)
	GetApplication(ctx context.Context, id int64) (application.Record, error)
	UpdateStatus(ctx context.Context, id int64, status application.Status) (bool, error)
	DeleteApplication(ctx context.Context, id int64) (bool, error)
}

type SQLApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *SQLApplicationRepository {
	return &SQLApplicationRepository{db: db}
}

func (r *SQLApplicationRepository) AddApplication(ctx context.Context, rec application.Record) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (job_title, company, location, job_link, status, applied_date, follow_up_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		strings.TrimSpace(rec.JobTitle),
		strings.TrimSpace(rec.Company),
		strings.TrimSpace(rec.Location),
		strings.TrimSpace(rec.JobLink),
		string(rec.Status),
		rec.AppliedDate,
		rec.FollowUpDate,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetApplications lists records in id order, optionally narrowed to one status.
func (r *SQLApplicationRepository) GetApplications(ctx context.Context, status application.Status) ([]application.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_title, company, location, job_link, status, applied_date, follow_up_date
		 FROM applications
		 WHERE ($1 = '' OR status = $1)
		 ORDER BY id`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Record, 0)
	for rows.Next() {
		rec, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLApplicationRepository) GetApplication(ctx context.Context, id int64) (application.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_title, company, location, job_link, status, applied_date, follow_up_date
		 FROM applications
		 WHERE id = $1`,
		id,
	)
	rec, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return application.Record{}, ErrApplicationNotFound
		}
		return application.Record{}, err
	}
	return rec, nil
}

// UpdateStatus reports false, not an error, when the id does not exist.
func (r *SQLApplicationRepository) UpdateStatus(ctx context.Context, id int64, status application.Status) (bool, error) {
	n, err := r.db.Exec(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLApplicationRepository) DeleteApplication(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanApplication(row database.Row) (application.Record, error) {
	var (
		rec    application.Record
		status string
	)
	if err := row.Scan(
		&rec.ID, &rec.JobTitle, &rec.Company, &rec.Location, &rec.JobLink,
		&status, &rec.AppliedDate, &rec.FollowUpDate,
	); err != nil {
		return application.Record{}, err
	}
	rec.Status = application.Status(status)
	return rec, nil
}

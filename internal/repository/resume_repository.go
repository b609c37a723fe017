package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/resume"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
)

const defaultResumeListLimit = 10

type ResumeRepository interface {
	AddResume(ctx context.Context, p resume.Profile) (int64, error)
	GetResumes(ctx context.Context, limit int) ([]resume.Record, error)
	GetResume(ctx context.Context, id int64) (resume.Record, error)
}

type SQLResumeRepository struct {
	db database.DB
}

func NewResumeRepository(db database.DB) *SQLResumeRepository {
	return &SQLResumeRepository{db: db}
}

// AddResume stores a parsed profile. List fields are kept as JSON text.
func (r *SQLResumeRepository) AddResume(ctx context.Context, p resume.Profile) (int64, error) {
	skills, err := encodeList(p.Skills, []string{})
	if err != nil {
		return 0, err
	}
	experience, err := encodeList(p.Experience, []resume.ExperienceEntry{})
	if err != nil {
		return 0, err
	}
	education, err := encodeList(p.Education, []resume.EducationEntry{})
	if err != nil {
		return 0, err
	}

	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO resumes (name, email, phone, skills, experience, education, file_path, date_parsed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		p.Name, p.Email, p.Phone, skills, experience, education, p.SourceFile, time.Now().UTC(),
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQLResumeRepository) GetResumes(ctx context.Context, limit int) ([]resume.Record, error) {
	if limit <= 0 {
		limit = defaultResumeListLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, skills, experience, education, file_path, date_parsed
		 FROM resumes
		 ORDER BY date_parsed DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Record, 0)
	for rows.Next() {
		rec, err := scanResume(rows)
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

func (r *SQLResumeRepository) GetResume(ctx context.Context, id int64) (resume.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, skills, experience, education, file_path, date_parsed
		 FROM resumes
		 WHERE id = $1`,
		id,
	)
	rec, err := scanResume(row)
	if err != nil {
		if isNoRows(err) {
			return resume.Record{}, ErrResumeNotFound
		}
		return resume.Record{}, err
	}
	return rec, nil
}

func scanResume(row database.Row) (resume.Record, error) {
	var (
		rec                           resume.Record
		skills, experience, education string
	)
	if err := row.Scan(
		&rec.ID, &rec.Profile.Name, &rec.Profile.Email, &rec.Profile.Phone,
		&skills, &experience, &education, &rec.Profile.SourceFile, &rec.DateParsed,
	); err != nil {
		return resume.Record{}, err
	}

	rec.Profile.Skills = []string{}
	rec.Profile.Experience = []resume.ExperienceEntry{}
	rec.Profile.Education = []resume.EducationEntry{}
	if err := decodeList(skills, &rec.Profile.Skills); err != nil {
		return resume.Record{}, fmt.Errorf("resume %d skills: %w", rec.ID, err)
	}
	if err := decodeList(experience, &rec.Profile.Experience); err != nil {
		return resume.Record{}, fmt.Errorf("resume %d experience: %w", rec.ID, err)
	}
	if err := decodeList(education, &rec.Profile.Education); err != nil {
		return resume.Record{}, fmt.Errorf("resume %d education: %w", rec.ID, err)
	}
	return rec, nil
}

func encodeList[T any](v []T, empty []T) (string, error) {
	if v == nil {
		v = empty
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw string, out any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

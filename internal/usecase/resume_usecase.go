package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-match/internal/document"
	"resume-match/internal/domain/resume"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/repository"
)

// ResumeParser turns résumé text into a profile. *extract.Parser implements it.
type ResumeParser interface {
	Parse(text string) resume.Profile
}

type ResumeUsecase interface {
	Parse(ctx context.Context, text, sourceFile string) (resume.Profile, error)
	ParseAndSave(ctx context.Context, text, sourceFile string) (resume.Record, error)
	Upload(ctx context.Context, filename string, data []byte) (resume.Record, error)
	List(ctx context.Context, limit int) ([]resume.Record, error)
	Get(ctx context.Context, id int64) (resume.Record, error)
}

type Resumes struct {
	parser  ResumeParser
	resumes repository.ResumeRepository
	cache   Cache
	ttl     time.Duration
	logger  *logging.Logger
}

func NewResumeUsecase(parser ResumeParser, resumes repository.ResumeRepository, cache Cache, ttl time.Duration, logger *logging.Logger) *Resumes {
	return &Resumes{parser: parser, resumes: resumes, cache: cache, ttl: ttl, logger: logging.OrNop(logger)}
}

// Parse extracts a profile from text. Parsing is deterministic, so results
// are cached by content hash.
func (u *Resumes) Parse(ctx context.Context, text, sourceFile string) (resume.Profile, error) {
	if strings.TrimSpace(text) == "" {
		return resume.Profile{}, ErrInvalidInput
	}

	key := ParsedResumeCacheKey(text)
	if u.cache != nil {
		var cached resume.Profile
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logger.Debug("resume cache hit", "key", key)
			cached.SourceFile = sourceFile
			return withNonNilLists(cached), nil
		}
	}

	p := u.parser.Parse(text)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, p, u.ttl); err != nil {
			u.logger.Warn("resume cache set failed", "key", key, "error", err)
		}
	}

	p.SourceFile = sourceFile
	return p, nil
}

func (u *Resumes) ParseAndSave(ctx context.Context, text, sourceFile string) (resume.Record, error) {
	p, err := u.Parse(ctx, text, sourceFile)
	if err != nil {
		return resume.Record{}, err
	}

	id, err := u.resumes.AddResume(ctx, p)
	if err != nil {
		u.logger.Error("save resume failed", "source_file", sourceFile, "error", err)
		return resume.Record{}, ErrInternal
	}
	u.logger.Info("resume saved", "resume_id", id, "skills", len(p.Skills))

	return resume.Record{ID: id, Profile: p, DateParsed: time.Now().UTC()}, nil
}

func (u *Resumes) Upload(ctx context.Context, filename string, data []byte) (resume.Record, error) {
	text, err := document.ExtractText(filename, data)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedFormat) {
			return resume.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		u.logger.Warn("document extraction failed", "filename", filename, "error", err)
		return resume.Record{}, fmt.Errorf("%w: unreadable document", ErrInvalidInput)
	}
	return u.ParseAndSave(ctx, text, filename)
}

func (u *Resumes) List(ctx context.Context, limit int) ([]resume.Record, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.resumes.GetResumes(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Resumes) Get(ctx context.Context, id int64) (resume.Record, error) {
	if id <= 0 {
		return resume.Record{}, ErrInvalidInput
	}
	rec, err := u.resumes.GetResume(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Record{}, ErrNotFound
		}
		return resume.Record{}, ErrInternal
	}
	return rec, nil
}

func withNonNilLists(p resume.Profile) resume.Profile {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []resume.ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []resume.EducationEntry{}
	}
	return p
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-match/internal/domain/application"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/repository"
	"resume-match/internal/ws"
)

const (
	dateLayout     = "2006-01-02"
	followUpOffset = 7 * 24 * time.Hour
)

type RecordApplicationParams struct {
	JobTitle     string
	Company      string
	Location     string
	JobLink      string
	Status       string
	AppliedDate  string
	FollowUpDate string
}

type TrackerUsecase interface {
	Record(ctx context.Context, params RecordApplicationParams) (application.Record, error)
	List(ctx context.Context, status string) ([]application.Record, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Tracker struct {
	apps   repository.ApplicationRepository
	events EventPublisher
	logger *logging.Logger
	now    func() time.Time
}

func NewTrackerUsecase(apps repository.ApplicationRepository, events EventPublisher, logger *logging.Logger) *Tracker {
	return &Tracker{apps: apps, events: events, logger: logging.OrNop(logger), now: time.Now}
}

// Record stores an application. The applied date defaults to today and the
// follow-up date to a week after the applied date.
func (u *Tracker) Record(ctx context.Context, params RecordApplicationParams) (application.Record, error) {
	rec := application.Record{
		JobTitle: strings.TrimSpace(params.JobTitle),
		Company:  strings.TrimSpace(params.Company),
		Location: strings.TrimSpace(params.Location),
		JobLink:  strings.TrimSpace(params.JobLink),
		Status:   application.StatusApplied,
	}
	if rec.JobTitle == "" || rec.Company == "" {
		return application.Record{}, fmt.Errorf("%w: job title and company are required", ErrInvalidInput)
	}

	if strings.TrimSpace(params.Status) != "" {
		st, err := application.ParseStatus(params.Status)
		if err != nil {
			return application.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rec.Status = st
	}

	applied := u.now()
	if s := strings.TrimSpace(params.AppliedDate); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return application.Record{}, fmt.Errorf("%w: applied date must be YYYY-MM-DD", ErrInvalidInput)
		}
		applied = t
	}
	rec.AppliedDate = applied.Format(dateLayout)

	rec.FollowUpDate = applied.Add(followUpOffset).Format(dateLayout)
	if s := strings.TrimSpace(params.FollowUpDate); s != "" {
		if _, err := time.Parse(dateLayout, s); err != nil {
			return application.Record{}, fmt.Errorf("%w: follow-up date must be YYYY-MM-DD", ErrInvalidInput)
		}
		rec.FollowUpDate = s
	}

	id, err := u.apps.AddApplication(ctx, rec)
	if err != nil {
		u.logger.Error("record application failed", "company", rec.Company, "error", err)
		return application.Record{}, ErrInternal
	}
	rec.ID = id

	u.logger.Info("application recorded", "application_id", id, "company", rec.Company)
	u.publish(ws.EventApplicationRecorded, rec)
	return rec, nil
}

func (u *Tracker) List(ctx context.Context, status string) ([]application.Record, error) {
	var st application.Status
	if strings.TrimSpace(status) != "" {
		parsed, err := application.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		st = parsed
	}
	out, err := u.apps.GetApplications(ctx, st)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// UpdateStatus reports false, with no error, when no application has the id.
func (u *Tracker) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	st, err := application.ParseStatus(status)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ok, err := u.apps.UpdateStatus(ctx, id, st)
	if err != nil {
		u.logger.Error("update application status failed", "application_id", id, "error", err)
		return false, ErrInternal
	}
	if !ok {
		return false, nil
	}

	rec, err := u.apps.GetApplication(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrApplicationNotFound) {
			u.logger.Warn("reload application failed", "application_id", id, "error", err)
		}
		rec = application.Record{ID: id, Status: st}
	}
	u.publish(ws.EventApplicationUpdated, rec)
	return true, nil
}

func (u *Tracker) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := u.apps.DeleteApplication(ctx, id)
	if err != nil {
		u.logger.Error("delete application failed", "application_id", id, "error", err)
		return false, ErrInternal
	}
	if ok {
		u.publish(ws.EventApplicationDeleted, map[string]int64{"id": id})
	}
	return ok, nil
}

func (u *Tracker) publish(eventType string, data any) {
	if u.events != nil {
		u.events.Publish(eventType, data)
	}
}

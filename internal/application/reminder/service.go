package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/prelimpro/go-api/internal/domain"
	"github.com/prelimpro/go-api/internal/pkg/id"
	"go.uber.org/zap"
)

// Offsets are the fixed nudge points in days before the notice due date.
var Offsets = []int{7, 3, 1}

type Service interface {
	Schedule(ctx context.Context, userID string, req domain.ScheduleRemindersRequest) ([]domain.Reminder, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]domain.Reminder, error)
	DispatchDue(ctx context.Context) (int, error)
}

type reminderStore interface {
	Put(ctx context.Context, r *domain.Reminder) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error)
	MarkSent(ctx context.Context, reminderID string, sentAt time.Time) error
}

type projectStore interface {
	Get(ctx context.Context, projectID string) (*domain.Project, error)
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	reminders reminderStore
	projects  projectStore
	sms       smsSender
	log       *zap.Logger
	now       func() time.Time
}

func NewService(reminders reminderStore, projects projectStore, sms smsSender, log *zap.Logger) Service {
	return &service{
		reminders: reminders,
		projects:  projects,
		sms:       sms,
		log:       log,
		now:       time.Now,
	}
}

// Schedule creates pending reminders at the fixed offsets before the
// project's notice due date. Offsets already in the past are skipped; a
// project whose deadline has fully passed yields none.
func (s *service) Schedule(ctx context.Context, userID string, req domain.ScheduleRemindersRequest) ([]domain.Reminder, error) {
	p, err := s.ownedProject(ctx, userID, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !p.NoticeRequired || p.NoticeDueDate == nil {
		return nil, fmt.Errorf("project has no notice deadline: %w", domain.ErrBadRequest)
	}

	now := s.now().UTC()
	due := *p.NoticeDueDate
	created := make([]domain.Reminder, 0, len(Offsets))
	for _, offset := range Offsets {
		remindAt := due.AddDate(0, 0, -offset)
		if remindAt.Before(now) {
			continue
		}
		r := domain.Reminder{
			ReminderID: id.New(),
			ProjectID:  p.ProjectID,
			UserID:     userID,
			Phone:      req.Phone,
			OffsetDays: offset,
			RemindAt:   remindAt,
			Message: fmt.Sprintf("Preliminary notice for %q (%s) is due %s — %d day(s) left.",
				p.Name, p.State, due.Format("Jan 2, 2006"), offset),
			Status:    domain.ReminderPending,
			CreatedAt: now,
		}
		if err := s.reminders.Put(ctx, &r); err != nil {
			return nil, err
		}
		created = append(created, r)
	}
	return created, nil
}

func (s *service) ListByProject(ctx context.Context, userID, projectID string) ([]domain.Reminder, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.reminders.ListByProject(ctx, projectID)
}

// DispatchDue publishes every pending reminder whose time has come and marks
// it sent. A failed send leaves the reminder pending for the next run.
func (s *service) DispatchDue(ctx context.Context) (int, error) {
	due, err := s.reminders.ListDue(ctx, s.now())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range due {
		if err := s.sms.SendSMS(ctx, r.Phone, r.Message); err != nil {
			s.log.Warn("reminder send failed",
				zap.String("reminder_id", r.ReminderID),
				zap.Error(err))
			continue
		}
		if err := s.reminders.MarkSent(ctx, r.ReminderID, s.now().UTC()); err != nil {
			s.log.Warn("reminder mark-sent failed",
				zap.String("reminder_id", r.ReminderID),
				zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *service) ownedProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.Enable {
		return nil, fmt.Errorf("project deleted: %w", domain.ErrNotFound)
	}
	if p.OwnerUserID != userID {
		return nil, fmt.Errorf("project belongs to another user: %w", domain.ErrForbidden)
	}
	return p, nil
}

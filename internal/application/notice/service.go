package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/prelimpro/go-api/internal/domain"
	"github.com/prelimpro/go-api/internal/pkg/id"
	"github.com/prelimpro/go-api/internal/statute"
	"github.com/prelimpro/go-api/internal/template"
)

const presignTTL = 15 * time.Minute

type Service interface {
	Draft(ctx context.Context, userID string, req domain.DraftNoticeRequest) (*domain.Notice, error)
	Get(ctx context.Context, userID, noticeID string) (*domain.Notice, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]domain.Notice, error)
	Send(ctx context.Context, userID, noticeID string, req domain.SendNoticeRequest) (*domain.Notice, error)
	DownloadURL(ctx context.Context, userID, noticeID string) (string, error)
}

type noticeStore interface {
	Put(ctx context.Context, n *domain.Notice) error
	Get(ctx context.Context, noticeID string) (*domain.Notice, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Notice, error)
	MarkSent(ctx context.Context, noticeID, sentTo string, sentAt time.Time) error
}

type projectStore interface {
	Get(ctx context.Context, projectID string) (*domain.Project, error)
}

type documentArchive interface {
	ArchiveDocument(ctx context.Context, key, body string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	notices  noticeStore
	projects projectStore
	archive  documentArchive
	mail     mailer
	table    *statute.Table
}

func NewService(notices noticeStore, projects projectStore, archive documentArchive, mail mailer, table *statute.Table) Service {
	return &service{notices: notices, projects: projects, archive: archive, mail: mail, table: table}
}

// Draft merges the project's state template with the supplied placeholder
// values and persists the result as a frozen text snapshot. Project fields
// seed the notice-family placeholders; user-supplied values win.
func (s *service) Draft(ctx context.Context, userID string, req domain.DraftNoticeRequest) (*domain.Notice, error) {
	p, err := s.ownedProject(ctx, userID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	values := template.PlaceholderMap{
		"project_address":     p.Address,
		"owner_name":          p.PropertyOwnerName,
		"project_description": p.Name,
	}
	if p.NoticeDueDate != nil {
		values["deadline_date"] = p.NoticeDueDate.Format("January 2, 2006")
	}
	for k, v := range req.Placeholders {
		values[k] = v
	}

	slug := statute.Slug(p.State)
	rule := template.Resolve(s.table, slug)
	content := template.Merge(s.table, slug, values)

	now := time.Now().UTC()
	n := &domain.Notice{
		NoticeID:        id.New(),
		ProjectID:       p.ProjectID,
		CreatedByUserID: userID,
		State:           rule.StateName,
		TemplateSlug:    slug,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	key := fmt.Sprintf("notices/%s.txt", n.NoticeID)
	if _, err := s.archive.ArchiveDocument(ctx, key, content); err != nil {
		return nil, fmt.Errorf("archive notice document: %w", err)
	}
	n.ArchiveKey = key

	if err := s.notices.Put(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) Get(ctx context.Context, userID, noticeID string) (*domain.Notice, error) {
	return s.owned(ctx, userID, noticeID)
}

func (s *service) ListByProject(ctx context.Context, userID, projectID string) ([]domain.Notice, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.notices.ListByProject(ctx, projectID)
}

// Send emails the frozen document body to the given address and stamps the
// notice as sent. Serving by mail remains the sender's responsibility; this
// is the courtesy copy.
func (s *service) Send(ctx context.Context, userID, noticeID string, req domain.SendNoticeRequest) (*domain.Notice, error) {
	n, err := s.owned(ctx, userID, noticeID)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Preliminary notice — %s", n.State)
	if err := s.mail.SendEmail(req.Email, subject, n.Content); err != nil {
		return nil, fmt.Errorf("send notice email: %w", err)
	}

	sentAt := time.Now().UTC()
	if err := s.notices.MarkSent(ctx, n.NoticeID, req.Email, sentAt); err != nil {
		return nil, err
	}
	n.SentAt = &sentAt
	n.SentTo = req.Email
	return n, nil
}

func (s *service) DownloadURL(ctx context.Context, userID, noticeID string) (string, error) {
	n, err := s.owned(ctx, userID, noticeID)
	if err != nil {
		return "", err
	}
	if n.ArchiveKey == "" {
		return "", fmt.Errorf("notice has no archived document: %w", domain.ErrNotFound)
	}
	return s.archive.PresignedURL(ctx, n.ArchiveKey, presignTTL)
}

func (s *service) owned(ctx context.Context, userID, noticeID string) (*domain.Notice, error) {
	n, err := s.notices.Get(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedProject(ctx, userID, n.ProjectID); err != nil {
		return nil, err
	}
	return n, nil
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

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/prelimpro/go-api/internal/domain"
	"github.com/prelimpro/go-api/internal/pkg/id"
	"github.com/prelimpro/go-api/internal/statute"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, ownerUserID string, req domain.CreateProjectRequest) (*domain.Project, error)
	List(ctx context.Context, ownerUserID string) ([]domain.Project, error)
	Get(ctx context.Context, ownerUserID, projectID string) (*domain.Project, error)
	Update(ctx context.Context, ownerUserID, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, ownerUserID, projectID string) error // soft delete
}

type projectStore interface {
	Put(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]domain.Project, error)
	SoftDelete(ctx context.Context, projectID string) error
}

type service struct {
	repo  projectStore
	table *statute.Table
}

func NewService(repo projectStore, table *statute.Table) Service {
	return &service{repo: repo, table: table}
}

func (s *service) Create(ctx context.Context, ownerUserID string, req domain.CreateProjectRequest) (*domain.Project, error) {
	if !statute.IsValidState(req.State) {
		return nil, fmt.Errorf("unknown state %q: %w", req.State, domain.ErrBadRequest)
	}
	start, err := time.Parse(dateLayout, req.JobStartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid job_start_date (want YYYY-MM-DD): %w", domain.ErrBadRequest)
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ProjectID:            id.New(),
		OwnerUserID:          ownerUserID,
		Name:                 req.Name,
		Address:              req.Address,
		State:                req.State,
		JobStartDate:         start,
		PropertyOwnerName:    req.PropertyOwnerName,
		PropertyOwnerAddress: req.PropertyOwnerAddress,
		GeneralContractor:    req.GeneralContractor,
		Notes:                req.Notes,
		Enable:               true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	s.stampDeadline(p)

	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, ownerUserID string) ([]domain.Project, error) {
	all, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.Enable {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *service) Get(ctx context.Context, ownerUserID, projectID string) (*domain.Project, error) {
	p, err := s.owned(ctx, ownerUserID, projectID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, ownerUserID, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	p, err := s.owned(ctx, ownerUserID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.State != nil {
		if !statute.IsValidState(*req.State) {
			return nil, fmt.Errorf("unknown state %q: %w", *req.State, domain.ErrBadRequest)
		}
		p.State = *req.State
	}
	if req.JobStartDate != nil {
		start, err := time.Parse(dateLayout, *req.JobStartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid job_start_date (want YYYY-MM-DD): %w", domain.ErrBadRequest)
		}
		p.JobStartDate = start
	}
	if req.PropertyOwnerName != nil {
		p.PropertyOwnerName = *req.PropertyOwnerName
	}
	if req.PropertyOwnerAddress != nil {
		p.PropertyOwnerAddress = *req.PropertyOwnerAddress
	}
	if req.GeneralContractor != nil {
		p.GeneralContractor = *req.GeneralContractor
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	// Deadline fields always re-stamped: state or start-date changes move the
	// due date.
	s.stampDeadline(p)
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, ownerUserID, projectID string) error {
	if _, err := s.owned(ctx, ownerUserID, projectID); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, projectID)
}

// owned fetches a live project and enforces ownership.
func (s *service) owned(ctx context.Context, ownerUserID, projectID string) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.Enable {
		return nil, fmt.Errorf("project deleted: %w", domain.ErrNotFound)
	}
	if p.OwnerUserID != ownerUserID {
		return nil, fmt.Errorf("project belongs to another user: %w", domain.ErrForbidden)
	}
	return p, nil
}

// stampDeadline fills the statutory deadline fields from the rule table.
// States with no table entry are recorded as not-required with an explicit
// note rather than left looking safe by omission.
func (s *service) stampDeadline(p *domain.Project) {
	days, ok := s.table.DeadlineDays(p.State)
	if !ok || days <= 0 {
		p.NoticeRequired = false
		p.DeadlineDays = 0
		p.NoticeDueDate = nil
		p.DeadlineNote = "no preliminary notice rule on file for " + p.State
		return
	}
	due := p.JobStartDate.AddDate(0, 0, days)
	p.NoticeRequired = true
	p.DeadlineDays = days
	p.NoticeDueDate = &due
	p.DeadlineNote = ""
}

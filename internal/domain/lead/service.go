package lead

import (
	"context"
	"time"
)

// Service handles lead business logic
type Service struct {
	repo *Repository
}

// NewService creates lead service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List runs a query engine request and shapes the paginated response.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	q.Normalize()
	leads, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ListResponse{
		Leads:      leads,
		Total:      total,
		TotalPages: TotalPages(total, q.Limit),
	}, nil
}

// Get returns a lead by ID
func (s *Service) Get(ctx context.Context, id int64) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

// Create validates the enum fields, assigns the display id and timestamps,
// and persists the new lead.
func (s *Service) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !req.Source.Valid() {
		return nil, ErrInvalidSource
	}

	now := time.Now()
	l := &Lead{
		LeadID:    NewLeadID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     optional(req.Phone),
		Status:    req.Status,
		Source:    req.Source,
		Owner:     req.Owner,
		Team:      optional(req.Team),
		Notes:     optional(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update applies only the provided fields and refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateLeadRequest) (*Lead, error) {
	if err := req.validateEnums(); err != nil {
		return nil, err
	}

	l, err := s.repo.Update(ctx, id, req.Changes(time.Now()))
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

// Delete hard-deletes one lead
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLeadNotFound
	}
	return nil
}

// BulkDelete removes every matched id and reports the count actually
// deleted; unmatched ids are skipped, not errors.
func (s *Service) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	return s.repo.DeleteMany(ctx, ids)
}

// BulkUpdate applies the same field set to every matched id.
func (s *Service) BulkUpdate(ctx context.Context, ids []int64, updates *UpdateLeadRequest) (int64, error) {
	if err := updates.validateEnums(); err != nil {
		return 0, err
	}
	return s.repo.UpdateMany(ctx, ids, updates.Changes(time.Now()))
}

// Stats returns dashboard aggregates
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	return s.repo.Stats(ctx)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

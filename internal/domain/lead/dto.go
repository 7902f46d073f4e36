package lead

import "time"

// CreateLeadRequest carries caller-supplied fields for a new lead.
// leadId and the timestamps are server-assigned.
type CreateLeadRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Status Status `json:"status" validate:"required"`
	Source Source `json:"source" validate:"required"`
	Owner  string `json:"owner" validate:"required"`
	Team   string `json:"team"`
	Notes  string `json:"notes"`
}

// UpdateLeadRequest is a partial update: only non-nil fields are applied.
type UpdateLeadRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone"`
	Status *Status `json:"status"`
	Source *Source `json:"source"`
	Owner  *string `json:"owner" validate:"omitempty,min=1"`
	Team   *string `json:"team"`
	Notes  *string `json:"notes"`
}

// Changes returns the column map for the provided fields, always including
// the refreshed updated_at.
func (r *UpdateLeadRequest) Changes(now time.Time) map[string]interface{} {
	changes := map[string]interface{}{"updated_at": now}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Phone != nil {
		changes["phone"] = *r.Phone
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	if r.Source != nil {
		changes["source"] = *r.Source
	}
	if r.Owner != nil {
		changes["owner"] = *r.Owner
	}
	if r.Team != nil {
		changes["team"] = *r.Team
	}
	if r.Notes != nil {
		changes["notes"] = *r.Notes
	}
	return changes
}

// validateEnums checks enum membership for the fields that are present.
func (r *UpdateLeadRequest) validateEnums() error {
	if r.Status != nil && !r.Status.Valid() {
		return ErrInvalidStatus
	}
	if r.Source != nil && !r.Source.Valid() {
		return ErrInvalidSource
	}
	return nil
}

// BulkDeleteRequest identifies the leads to hard-delete.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

// BulkUpdateRequest applies the same field set to every id.
type BulkUpdateRequest struct {
	IDs     []int64            `json:"ids" validate:"required,min=1"`
	Updates *UpdateLeadRequest `json:"updates" validate:"required"`
}

// ListResponse is the paginated list payload.
type ListResponse struct {
	Leads      []Lead `json:"leads"`
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// StatsResponse aggregates the lead collection for the dashboard.
type StatsResponse struct {
	TotalLeads    int64            `json:"totalLeads"`
	LeadsByStatus map[Status]int64 `json:"leadsByStatus"`
	LeadsBySource map[Source]int64 `json:"leadsBySource"`
	RecentLeads   []Lead           `json:"recentLeads"`
}

package lead

import (
	"fmt"
	"math/rand"
	"time"
)

// Status represents the pipeline stage of a lead
type Status string

const (
	StatusNew         Status = "New"
	StatusContacted   Status = "Contacted"
	StatusInProgress  Status = "In Progress"
	StatusQualified   Status = "Qualified"
	StatusUnqualified Status = "Unqualified"
)

// Statuses lists every accepted status value.
var Statuses = []Status{
	StatusNew,
	StatusContacted,
	StatusInProgress,
	StatusQualified,
	StatusUnqualified,
}

// Valid reports whether s is a member of the status enumeration.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Source represents how a lead entered the pipeline
type Source string

const (
	SourceWebsite       Source = "Website"
	SourceReferral      Source = "Referral"
	SourceSocialMedia   Source = "Social Media"
	SourceEmailCampaign Source = "Email Campaign"
	SourceConference    Source = "Conference"
	SourceOther         Source = "Other"
)

// Sources lists every accepted source value.
var Sources = []Source{
	SourceWebsite,
	SourceReferral,
	SourceSocialMedia,
	SourceEmailCampaign,
	SourceConference,
	SourceOther,
}

// Valid reports whether s is a member of the source enumeration.
func (s Source) Valid() bool {
	for _, v := range Sources {
		if s == v {
			return true
		}
	}
	return false
}

// Lead is a sales contact tracked through the status pipeline.
type Lead struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	LeadID    string    `gorm:"column:lead_id;not null" json:"leadId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	Status    Status    `gorm:"column:status;not null" json:"status"`
	Source    Source    `gorm:"column:source;not null" json:"source"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
	Owner     string    `gorm:"column:owner;not null" json:"owner"`
	Team      *string   `gorm:"column:team" json:"team"`
	Notes     *string   `gorm:"column:notes" json:"notes"`
}

func (Lead) TableName() string { return "leads" }

// NewLeadID returns a display identifier like LD-4821. The 4 digits are an
// independent random draw with no uniqueness check, so collisions are
// possible; the value is for display, id stays the primary identity.
func NewLeadID() string {
	return fmt.Sprintf("LD-%d", 1000+rand.Intn(9000))
}

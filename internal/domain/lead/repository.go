package lead

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles lead data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates lead repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new lead
func (r *Repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// GetByID retrieves a lead by ID, nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	tx := r.db.WithContext(ctx).First(&l, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &l, nil
}

// List runs the query engine: one transaction covering the matching count
// and the page window, so the totals always describe the same snapshot the
// page was cut from.
func (r *Repository) List(ctx context.Context, q ListQuery) ([]Lead, int64, error) {
	q.Normalize()

	leads := make([]Lead, 0, q.Limit)
	var total int64
	now := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := q.apply(tx.Model(&Lead{}), now).Count(&total).Error; err != nil {
			return err
		}
		return q.apply(tx.Model(&Lead{}), now).
			Order(q.orderClause()).
			Limit(q.Limit).
			Offset(q.Offset()).
			Find(&leads).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// Update applies the column changes to one lead and returns the fresh
// record, nil when the id does not exist.
func (r *Repository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*Lead, error) {
	tx := r.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", id).Updates(changes)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes a lead, reporting whether a row existed
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&Lead{}, id)
	return tx.RowsAffected > 0, tx.Error
}

// DeleteMany hard-deletes the given ids, skipping unmatched ones silently
func (r *Repository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Lead{})
	return tx.RowsAffected, tx.Error
}

// UpdateMany applies the same column changes to every given id
func (r *Repository) UpdateMany(ctx context.Context, ids []int64, changes map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Model(&Lead{}).Where("id IN ?", ids).Updates(changes)
	return tx.RowsAffected, tx.Error
}

// Stats aggregates the whole collection: total, per-status and per-source
// counts, and the 5 newest leads (created_at desc, id desc).
func (r *Repository) Stats(ctx context.Context) (*StatsResponse, error) {
	stats := &StatsResponse{
		LeadsByStatus: make(map[Status]int64),
		LeadsBySource: make(map[Source]int64),
		RecentLeads:   make([]Lead, 0, 5),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Lead{}).Count(&stats.TotalLeads).Error; err != nil {
			return err
		}

		var byStatus []struct {
			Status Status
			Count  int64
		}
		if err := tx.Model(&Lead{}).Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
			return err
		}
		for _, row := range byStatus {
			stats.LeadsByStatus[row.Status] = row.Count
		}

		var bySource []struct {
			Source Source
			Count  int64
		}
		if err := tx.Model(&Lead{}).Select("source, COUNT(*) AS count").Group("source").Scan(&bySource).Error; err != nil {
			return err
		}
		for _, row := range bySource {
			stats.LeadsBySource[row.Source] = row.Count
		}

		return tx.Order("created_at DESC, id DESC").Limit(5).Find(&stats.RecentLeads).Error
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

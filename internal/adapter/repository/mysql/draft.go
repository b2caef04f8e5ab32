package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	draftDomain "microfin-backoffice/internal/domain/draft"
)

type DraftRepository struct{ db *gorm.DB }

func NewDraftRepository(db *gorm.DB) *DraftRepository { return &DraftRepository{db: db} }

// Upsert is last-write-wins on draft_id: the unique index plus ON CONFLICT
// guarantees at most one row per draft id, saves to an existing id
// overwrite in place.
func (r *DraftRepository) Upsert(ctx context.Context, d *draftDomain.Draft) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "draft_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nic", "name", "step", "payload", "saved_at", "updated_at",
			}),
		}).
		Create(d).Error
}

func (r *DraftRepository) GetByDraftID(ctx context.Context, draftID string) (*draftDomain.Draft, error) {
	var out draftDomain.Draft
	res := r.db.WithContext(ctx).Where("draft_id = ?", draftID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, draftDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DraftRepository) List(ctx context.Context) ([]draftDomain.Draft, error) {
	var out []draftDomain.Draft
	res := r.db.WithContext(ctx).Order("saved_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *DraftRepository) Delete(ctx context.Context, draftID string) error {
	return r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Delete(&draftDomain.Draft{}).Error
}

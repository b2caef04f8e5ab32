package draft

import "context"

type Repository interface {
	// Upsert saves by DraftID, overwriting any existing row in place.
	Upsert(ctx context.Context, d *Draft) error
	GetByDraftID(ctx context.Context, draftID string) (*Draft, error)
	// List returns drafts most recently saved first.
	List(ctx context.Context) ([]Draft, error)
	// Delete removes by DraftID unconditionally; deleting a missing draft
	// is not an error.
	Delete(ctx context.Context, draftID string) error
}

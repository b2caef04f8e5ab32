package draft

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("draft not found")

// Draft is a partially completed application, resumable later. Saves are
// last-write-wins by DraftID; there is no versioning.
type Draft struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DraftID string `gorm:"column:draft_id;type:char(32);not null;uniqueIndex:ux_drafts_draft_id" json:"draft_id"`
	NIC     string `gorm:"column:nic;size:16" json:"nic"`
	Name    string `gorm:"column:name;size:128" json:"name"`
	Step    int    `gorm:"column:step;not null" json:"step"`
	// JSON snapshot of the form fields; opaque to the store.
	Payload string `gorm:"column:payload;type:text" json:"payload"`

	SavedAt   time.Time      `gorm:"column:saved_at;not null" json:"saved_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Draft) TableName() string { return "drafts" }

package customer

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"microfin-backoffice/pkg/nic"
)

var (
	ErrNotFound  = errors.New("customer not found")
	ErrGroupFull = errors.New("group already has the maximum number of members")
)

// Lending groups are capped; the cap is enforced locally before any write.
const GroupCapacity = 3

type Customer struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CustomerID string `gorm:"column:customer_id;type:char(32);not null;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	NIC        string `gorm:"column:nic;size:16;not null;index" json:"nic"`
	FullName   string `gorm:"column:full_name;size:128" json:"full_name"`
	// Derived from the NIC on write; never set independently.
	Gender string `gorm:"column:gender;size:8" json:"gender"`

	BranchID string `gorm:"column:branch_id;type:char(32);index" json:"branch_id"`
	CenterID string `gorm:"column:center_id;type:char(32);index" json:"center_id"`
	GroupID  string `gorm:"column:group_id;type:char(32);index" json:"group_id"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Customer) TableName() string { return "customers" }

// DeriveGender re-derives the stored gender from the NIC, keeping the
// invariant that the two always agree. Invalid NICs clear the field.
func (c *Customer) DeriveGender() {
	info := nic.Parse(c.NIC)
	c.Gender = string(info.Gender)
}

// CanJoinGroup checks the capacity rule against a current member count.
func CanJoinGroup(memberCount int64) error {
	if memberCount >= GroupCapacity {
		return ErrGroupFull
	}
	return nil
}

package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	customerDomain "microfin-backoffice/internal/domain/customer"
	"microfin-backoffice/pkg/id"
)

type customerSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	CustomerID string         `gorm:"column:customer_id;uniqueIndex"`
	NIC        string         `gorm:"column:nic"`
	FullName   string         `gorm:"column:full_name"`
	Gender     string         `gorm:"column:gender"`
	BranchID   string         `gorm:"column:branch_id"`
	CenterID   string         `gorm:"column:center_id"`
	GroupID    string         `gorm:"column:group_id"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (customerSQLite) TableName() string { return "customers" }

func openCustomerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&customerSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestCustomerGetByNIC(t *testing.T) {
	db := openCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := &customerDomain.Customer{CustomerID: id.NewID32(), NIC: "851234567V", FullName: "W. A. Kumari"}
	c.DeriveGender()
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByNIC(ctx, "851234567V")
	if err != nil {
		t.Fatalf("GetByNIC: %v", err)
	}
	if got.FullName != "W. A. Kumari" || got.Gender != "Male" {
		t.Errorf("unexpected customer: %+v", got)
	}

	if _, err := repo.GetByNIC(ctx, "199850123456"); !errors.Is(err, customerDomain.ErrNotFound) {
		t.Fatalf("err = %v, want customer.ErrNotFound", err)
	}
}

func TestCustomerCountGroupMembers(t *testing.T) {
	db := openCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	groupID := id.NewID32()
	for i := 0; i < 2; i++ {
		c := &customerDomain.Customer{CustomerID: id.NewID32(), NIC: "851234567V", GroupID: groupID}
		if err := repo.Save(ctx, c); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	// member of another group
	if err := repo.Save(ctx, &customerDomain.Customer{CustomerID: id.NewID32(), GroupID: id.NewID32()}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	n, err := repo.CountGroupMembers(ctx, groupID)
	if err != nil {
		t.Fatalf("CountGroupMembers: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

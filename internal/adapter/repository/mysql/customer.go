package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customerDomain "microfin-backoffice/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) GetByNIC(ctx context.Context, nic string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("nic = ?", nic).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) CountGroupMembers(ctx context.Context, groupID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&customerDomain.Customer{}).
		Where("group_id = ?", groupID).
		Count(&n)
	return n, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

package customer

import "context"

type Repository interface {
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	GetByNIC(ctx context.Context, nic string) (*Customer, error)
	CountGroupMembers(ctx context.Context, groupID string) (int64, error)
	Save(ctx context.Context, c *Customer) error
}

package order

import "context"

// Repository provides order persistence. InsertOrder assigns the id.
type Repository interface {
	Orders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int) (*Order, error)
	InsertOrder(ctx context.Context, ord *Order) error
	UpdateOrder(ctx context.Context, ord *Order) error
	DeleteOrder(ctx context.Context, id int) error
	AppendLog(ctx context.Context, action, username string) error
}

package repository

import (
	"context"

	"github.com/bookden/books-api/internal/model"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateCustomer(ctx context.Context, c *model.Customer) error
	CreateOrder(ctx context.Context, o *model.Order) error
	FindOrderByID(ctx context.Context, id uint) (*model.Order, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return classify(r.db.WithContext(ctx).Create(c).Error)
}

// CreateOrder writes the order row and every line in one transaction.
// A missing customer or book fails the whole write through the store's
// foreign keys and leaves no rows behind.
func (r *GormOrderRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	return classify(err)
}

func (r *GormOrderRepository) FindOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines.Book").
		First(&order, "id = ?", id).Error; err != nil {

		return nil, classify(err)
	}
	return &order, nil
}

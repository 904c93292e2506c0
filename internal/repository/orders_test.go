package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/testutil"
)

func TestGormOrderRepository_CreateCustomer_Duplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	testutil.SeedCustomer(t, db, "0901234567")

	dup := model.Customer{
		Phone:        "0901234567",
		Address:      "7 Other St",
		StreetNumber: "7",
	}
	if err := repo.CreateCustomer(ctx, &dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestGormOrderRepository_CreateOrder_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "0901234567")
	book := testutil.SeedBook(t, db, "Vol 1", "10.00")

	order := model.Order{
		CustomerID: customer.ID,
		Lines: []model.OrderLine{
			{BookID: book.ID, Quantity: 3, Price: testutil.MustDecimal(t, "10.00")},
		},
	}
	if err := repo.CreateOrder(ctx, &order); err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	got, err := repo.FindOrderByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("FindOrderByID returned error: %v", err)
	}
	if got.Customer == nil || got.Customer.Phone != "0901234567" {
		t.Errorf("expected preloaded customer, got %+v", got.Customer)
	}
	if len(got.Lines) != 1 || got.Lines[0].Book == nil || got.Lines[0].Book.Title != "Vol 1" {
		t.Errorf("expected preloaded line with book, got %+v", got.Lines)
	}
	if got.Lines[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", got.Lines[0].Quantity)
	}
}

func TestGormOrderRepository_CreateOrder_UnknownBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "0901234567")
	book := testutil.SeedBook(t, db, "Vol 1", "10.00")

	order := model.Order{
		CustomerID: customer.ID,
		Lines: []model.OrderLine{
			{BookID: book.ID, Quantity: 1, Price: testutil.MustDecimal(t, "10.00")},
			{BookID: 999999, Quantity: 1, Price: testutil.MustDecimal(t, "10.00")},
		},
	}
	if err := repo.CreateOrder(ctx, &order); !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey, got %v", err)
	}

	var orders, lines int64
	if err := db.Model(&model.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("failed to count orders: %v", err)
	}
	if err := db.Model(&model.OrderLine{}).Count(&lines).Error; err != nil {
		t.Fatalf("failed to count order lines: %v", err)
	}
	if orders != 0 || lines != 0 {
		t.Errorf("expected no rows after failed write, got orders=%d lines=%d", orders, lines)
	}
}

func TestGormOrderRepository_FindOrderByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormOrderRepository(db)

	_, err := repo.FindOrderByID(context.Background(), 424242)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID           uint    `gorm:"primaryKey"`
	Name         *string `gorm:"size:520"`
	Phone        string  `gorm:"size:10;not null;uniqueIndex"`
	Email        *string `gorm:"size:100;uniqueIndex"`
	Address      string  `gorm:"size:2083;not null"`
	StreetNumber string  `gorm:"size:520;not null"`
	CreatedAt    time.Time
}

type Order struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"not null"`
	Customer   *Customer
	Lines      []OrderLine `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// OrderLine rows are owned by their order and go away with it. The
// book reference is enforced by the store; deleting a book that still
// has lines is rejected, not cascaded.
type OrderLine struct {
	ID       uint `gorm:"primaryKey"`
	OrderID  uint `gorm:"not null"`
	BookID   uint `gorm:"not null"`
	Book     *Book
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

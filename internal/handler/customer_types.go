package handler

import (
	"github.com/bookden/books-api/internal/model"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=520"`
	Phone        string  `json:"phone" binding:"required,len=10"`
	Email        *string `json:"email" binding:"omitempty,email,max=100"`
	Address      string  `json:"address" binding:"required,max=2083"`
	StreetNumber string  `json:"street_number" binding:"required,max=520"`
}

type CustomerResponse struct {
	ID           uint    `json:"id"`
	Name         *string `json:"name,omitempty"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	Address      string  `json:"address"`
	StreetNumber string  `json:"street_number"`
}

type OrderLineRequest struct {
	BookID   uint   `json:"book_id" binding:"required,min=1"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    string `json:"price" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required,min=1"`
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

type OrderCustomer struct {
	ID   uint    `json:"id"`
	Name *string `json:"name,omitempty"`
}

type OrderBook struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type OrderLineResponse struct {
	ID       uint            `json:"id"`
	Book     OrderBook       `json:"book"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"19.99"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	Customer  OrderCustomer       `json:"customer"`
	Lines     []OrderLineResponse `json:"lines"`
	CreatedAt model.Date          `json:"created_at" swaggertype:"string" example:"2025-08-30"`
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/repository"
	"github.com/bookden/books-api/internal/validation"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	repo repository.OrderRepository
}

func NewCustomerHandler(repo repository.OrderRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create", h.CreateCustomer)
	r.POST("/new-order", h.CreateOrder)
}

// CreateCustomer godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateCustomerRequest  true  "Customer to create"
// @Success      201      {object}  CustomerResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      409      {object}  validation.ErrorResponse  "Phone or email already registered"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /customer/create [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	customer := model.Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		StreetNumber: req.StreetNumber,
	}

	if err := h.repo.CreateCustomer(c.Request.Context(), &customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeErrorDetails(c, http.StatusConflict,
				"DUPLICATE_CUSTOMER",
				"a customer with this phone or email already exists",
				err.Error(),
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"CUSTOMER_CREATE_FAILED",
			"failed to create customer",
		)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// CreateOrder godoc
// @Summary      Create an order
// @Description  Create an order with its lines in one atomic write; a missing customer or book rejects the whole request
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateOrderRequest  true  "Order to create"
// @Success      201      {object}  OrderResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error or missing reference"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /customer/new-order [post]
func (h *CustomerHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	for i, lr := range req.Lines {
		price, err := validation.ParseMoney(lr.Price)
		if err != nil {
			writeFieldError(c, fmt.Sprintf("lines[%d].price", i), err.Error())
			return
		}
		lines = append(lines, model.OrderLine{
			BookID:   lr.BookID,
			Quantity: lr.Quantity,
			Price:    price,
		})
	}

	order := model.Order{
		CustomerID: req.CustomerID,
		Lines:      lines,
	}

	ctx := c.Request.Context()

	if err := h.repo.CreateOrder(ctx, &order); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			writeErrorDetails(c, http.StatusBadRequest,
				"INVALID_REFERENCE",
				"customer or book with the given id does not exist",
				err.Error(),
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"ORDER_CREATE_FAILED",
			"failed to create order",
		)
		return
	}

	created, err := h.repo.FindOrderByID(ctx, order.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"ORDER_FETCH_FAILED",
			"failed to fetch created order",
		)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*created))
}

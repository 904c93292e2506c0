package handler

import (
	"net/http"
	"strconv"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/validation"
	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeErrorDetails(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func writeFieldError(c *gin.Context, field, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors: []validation.FieldError{
			{Field: field, Rule: "format", Message: message},
		},
	})
}

func parseIDParam(c *gin.Context, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest, code, "invalid id format")
		return 0, false
	}
	return uint(id), true
}

// respondBookList applies the catalog's empty-result contract: an empty
// list is reported as 404 with a message, never as an empty 200 body.
func respondBookList(c *gin.Context, books []model.Book, emptyMessage string) {
	if len(books) == 0 {
		writeError(c, http.StatusNotFound, "NO_BOOKS_FOUND", emptyMessage)
		return
	}

	out := make([]BookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, toBookSummary(b))
	}
	c.JSON(http.StatusOK, out)
}

func toCoverResponse(cv *model.BookCover) *Cover {
	if cv == nil {
		return nil
	}
	return &Cover{
		CoverURL:    cv.CoverURL,
		AltCoverURL: cv.AltCoverURL,
		BackURL:     cv.BackURL,
		BookmarkURL: cv.BookmarkURL,
	}
}

func toNamedRef(id uint, name string) *NamedRef {
	return &NamedRef{ID: id, Name: name}
}

func toBookDetail(b model.Book) BookDetail {
	var pub *model.Date
	if b.PublishedAt != nil && !b.PublishedAt.IsZero() {
		pub = &model.Date{Time: *b.PublishedAt}
	}

	detail := BookDetail{
		ID:          b.ID,
		Title:       b.Title,
		Price:       b.Price,
		Description: b.Description,
		PageCount:   b.PageCount,
		Rating:      b.Rating,
		PublishedAt: pub,
		Volume:      b.Volume,
		Cover:       toCoverResponse(b.Cover),
	}

	if b.Publisher != nil {
		detail.Publisher = toNamedRef(b.Publisher.ID, b.Publisher.Name)
	}
	if b.Series != nil {
		detail.Series = toNamedRef(b.Series.ID, b.Series.Name)
	}
	if b.Author != nil {
		detail.Author = toNamedRef(b.Author.ID, b.Author.Name)
	}
	if b.BookType != nil {
		detail.BookType = toNamedRef(b.BookType.ID, b.BookType.Name)
	}

	return detail
}

func toBookSummary(b model.Book) BookSummary {
	return BookSummary{
		ID:     b.ID,
		Title:  b.Title,
		Price:  b.Price,
		Volume: b.Volume,
		Cover:  toCoverResponse(b.Cover),
	}
}

func toCustomerResponse(cu model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           cu.ID,
		Name:         cu.Name,
		Phone:        cu.Phone,
		Email:        cu.Email,
		Address:      cu.Address,
		StreetNumber: cu.StreetNumber,
	}
}

func toOrderResponse(o model.Order) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		CreatedAt: model.Date{Time: o.CreatedAt},
	}

	if o.Customer != nil {
		resp.Customer = OrderCustomer{ID: o.Customer.ID, Name: o.Customer.Name}
	}

	resp.Lines = make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lr := OrderLineResponse{
			ID:       line.ID,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
		if line.Book != nil {
			lr.Book = OrderBook{ID: line.Book.ID, Title: line.Book.Title}
		}
		resp.Lines = append(resp.Lines, lr)
	}

	return resp
}

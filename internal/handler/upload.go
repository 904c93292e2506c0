package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/repository"
	"github.com/bookden/books-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Presigner issues time-limited upload URLs against object storage.
type Presigner interface {
	PresignUpload(ctx context.Context, key string) (uploadURL, publicURL string, err error)
}

type UploadHandler struct {
	books     repository.BookRepository
	catalog   repository.CatalogRepository
	presigner Presigner
}

func NewUploadHandler(books repository.BookRepository, catalog repository.CatalogRepository, presigner Presigner) *UploadHandler {
	return &UploadHandler{
		books:     books,
		catalog:   catalog,
		presigner: presigner,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/book", h.CreateBook)
	r.POST("/presigned", h.CreatePresignedURL)
	r.OPTIONS("/book", preflight)
	r.OPTIONS("/presigned", preflight)
}

func preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a book; optional cover-image URLs are written in the same transaction
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest  true  "Book to create"
// @Success      201      {object}  BookDetail
// @Failure      400      {object}  validation.ErrorResponse  "Validation error or missing reference"
// @Failure      409      {object}  validation.ErrorResponse  "Duplicate entry"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /upload/book [post]
func (h *UploadHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	price, err := validation.ParseMoney(req.Price)
	if err != nil {
		writeFieldError(c, "price", err.Error())
		return
	}

	var rating *decimal.Decimal
	if req.Rating != nil {
		r, err := validation.ParseMoney(*req.Rating)
		if err != nil {
			writeFieldError(c, "rating", err.Error())
			return
		}
		rating = &r
	}

	ctx := c.Request.Context()

	if !h.checkReferences(c, &req) {
		return
	}

	var pubAt *time.Time
	if req.PublishedAt != nil && !req.PublishedAt.IsZero() {
		t := req.PublishedAt.Time
		pubAt = &t
	}

	book := model.Book{
		Title:       req.Title,
		Price:       price,
		Description: req.Description,
		PageCount:   req.PageCount,
		Rating:      rating,
		PublishedAt: pubAt,
		Volume:      req.Volume,
		PublisherID: req.PublisherID,
		SeriesID:    req.SeriesID,
		AuthorID:    req.AuthorID,
		BookTypeID:  req.BookTypeID,
	}

	if err := h.books.Create(ctx, &book, req.cover()); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeErrorDetails(c, http.StatusConflict,
				"DUPLICATE_ENTRY",
				"duplicate entry",
				err.Error(),
			)
			return
		}
		if errors.Is(err, repository.ErrForeignKey) {
			writeErrorDetails(c, http.StatusBadRequest,
				"INVALID_REFERENCE",
				"referenced record does not exist",
				err.Error(),
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	// Re-read with relations so the response reflects what was
	// actually persisted, not in-memory fragments of the write.
	created, err := h.books.FindByID(ctx, book.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch created book",
		)
		return
	}

	c.JSON(http.StatusCreated, toBookDetail(*created))
}

// checkReferences looks up each optional foreign key before the write.
// Any single missing reference rejects the request and names the
// entity kind; nothing is created.
func (h *UploadHandler) checkReferences(c *gin.Context, req *CreateBookRequest) bool {
	ctx := c.Request.Context()

	checks := []struct {
		id     *uint
		exists func(context.Context, uint) (bool, error)
		kind   string
	}{
		{req.PublisherID, h.catalog.PublisherExists, "publisher"},
		{req.SeriesID, h.catalog.SeriesExists, "series"},
		{req.AuthorID, h.catalog.AuthorExists, "author"},
		{req.BookTypeID, h.catalog.BookTypeExists, "book type"},
	}

	for _, chk := range checks {
		if chk.id == nil {
			continue
		}
		ok, err := chk.exists(ctx, *chk.id)
		if err != nil {
			writeError(c, http.StatusInternalServerError,
				"REFERENCE_CHECK_FAILED",
				"failed to verify "+chk.kind,
			)
			return false
		}
		if !ok {
			writeError(c, http.StatusBadRequest,
				"INVALID_REFERENCE",
				fmt.Sprintf("%s with the given id does not exist", chk.kind),
			)
			return false
		}
	}

	return true
}

var unsafeKeyChars = regexp.MustCompile(`[^\w.-]`)

func buildObjectKey(fileName string) string {
	name := unsafeKeyChars.ReplaceAllString(fileName, "")
	name = strings.ReplaceAll(name, "..", "")
	return fmt.Sprintf("uploads/%d-%s", time.Now().UnixMilli(), name)
}

// CreatePresignedURL godoc
// @Summary      Issue a presigned upload URL
// @Description  Returns a five-minute PUT URL for an image plus its future public URL
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        payload  body      PresignRequest  true  "File name and MIME type"
// @Success      200      {object}  PresignResponse
// @Failure      400      {object}  validation.ErrorResponse  "Non-image MIME type"
// @Failure      500      {object}  validation.ErrorResponse  "Signing failure"
// @Router       /upload/presigned [post]
func (h *UploadHandler) CreatePresignedURL(c *gin.Context) {
	var req PresignRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if !strings.HasPrefix(req.MimeType, "image/") {
		writeError(c, http.StatusBadRequest,
			"INVALID_FILE_TYPE",
			"invalid file type, only images allowed",
		)
		return
	}

	key := buildObjectKey(req.FileName)

	uploadURL, publicURL, err := h.presigner.PresignUpload(c.Request.Context(), key)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"PRESIGN_FAILED",
			"failed to generate upload URL",
		)
		return
	}

	c.JSON(http.StatusOK, PresignResponse{
		URL:       uploadURL,
		PublicURL: publicURL,
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/repository"
	"github.com/gin-gonic/gin"
)

// BookHandler serves the read and delete side of the catalog. Book
// creation lives on the upload group (UploadHandler).
type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/id/:id", h.GetBookByID)
	r.GET("/search", h.SearchBooks)
	r.GET("/all", h.ListAllBooks)
	r.GET("/light-novels", h.listByType(model.BookTypeLightNovel, "no light novels found"))
	r.GET("/manga", h.listByType(model.BookTypeManga, "no manga found"))
	r.GET("/artbooks", h.listByType(model.BookTypeArtbook, "no artbooks found"))
	r.GET("/ref-books", h.listByType(model.BookTypeReference, "no reference books found"))
	r.GET("/in-series/:id", h.ListBooksInSeries)
	r.DELETE("/:id", h.DeleteBook)
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book with its publisher, series, author, type and cover data
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookDetail
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /book/id/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_BOOK_ID")
	if !ok {
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookDetail(*book))
}

// SearchBooks godoc
// @Summary      Search books by title
// @Description  List books whose title contains the query substring; an empty result is a 404
// @Tags         books
// @Produce      json
// @Param        title  query     string  true  "Title substring"
// @Success      200    {array}   BookSummary
// @Failure      400    {object}  validation.ErrorResponse  "Missing title parameter"
// @Failure      404    {object}  validation.ErrorResponse  "No books matched"
// @Failure      500    {object}  validation.ErrorResponse  "Internal server error"
// @Router       /book/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		writeError(c, http.StatusBadRequest,
			"MISSING_TITLE",
			"title query parameter is required",
		)
		return
	}

	books, err := h.repo.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_SEARCH_FAILED",
			"failed to search books",
		)
		return
	}

	respondBookList(c, books, "book not found")
}

// ListAllBooks godoc
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {array}   BookSummary
// @Failure      404  {object}  validation.ErrorResponse  "Catalog is empty"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /book/all [get]
func (h *BookHandler) ListAllBooks(c *gin.Context) {
	books, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	respondBookList(c, books, "no books found")
}

func (h *BookHandler) listByType(typeID uint, emptyMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		books, err := h.repo.ListByType(c.Request.Context(), typeID)
		if err != nil {
			writeError(c, http.StatusInternalServerError,
				"BOOK_LIST_FAILED",
				"failed to fetch books",
			)
			return
		}

		respondBookList(c, books, emptyMessage)
	}
}

// ListBooksInSeries godoc
// @Summary      List books in a series
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Series ID"
// @Success      200  {array}   BookSummary
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "No books in series"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /book/in-series/{id} [get]
func (h *BookHandler) ListBooksInSeries(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_SERIES_ID")
	if !ok {
		return
	}

	books, err := h.repo.ListInSeries(c.Request.Context(), id)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	respondBookList(c, books, "no books found in this series")
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by ID; rejected while order lines still reference it
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID or book still referenced"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /book/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "INVALID_BOOK_ID")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}
		if errors.Is(err, repository.ErrForeignKey) {
			writeError(c, http.StatusBadRequest,
				"BOOK_IN_USE",
				"cannot delete this book as it is referenced by other records",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "book deleted successfully"})
}

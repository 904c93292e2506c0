package handler

import (
	"errors"
	"net/http"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/repository"
	"github.com/bookden/books-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// CatalogHandler manages the reference tables. Listings sit under the
// book group, creation under the upload group, mirroring the public
// surface of the catalog.
type CatalogHandler struct {
	repo repository.CatalogRepository
}

func NewCatalogHandler(repo repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

type CreateNamedRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

func (h *CatalogHandler) RegisterListRoutes(r *gin.RouterGroup) {
	r.GET("/authors", h.ListAuthors)
	r.GET("/publishers", h.ListPublishers)
	r.GET("/series", h.ListSeries)
	r.GET("/types", h.ListBookTypes)
}

func (h *CatalogHandler) RegisterUploadRoutes(r *gin.RouterGroup) {
	r.POST("/author", h.CreateAuthor)
	r.POST("/series", h.CreateSeries)
	r.POST("/publisher", h.CreatePublisher)
}

// ListAuthors godoc
// @Summary  List authors
// @Tags     catalog
// @Produce  json
// @Success  200  {array}   NamedRef
// @Failure  404  {object}  validation.ErrorResponse
// @Router   /book/authors [get]
func (h *CatalogHandler) ListAuthors(c *gin.Context) {
	authors, err := h.repo.ListAuthors(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "AUTHOR_LIST_FAILED", "failed to list authors")
		return
	}

	out := make([]NamedRef, 0, len(authors))
	for _, a := range authors {
		out = append(out, NamedRef{ID: a.ID, Name: a.Name})
	}
	respondNamedList(c, out, "no authors found")
}

// ListPublishers godoc
// @Summary  List publishers
// @Tags     catalog
// @Produce  json
// @Success  200  {array}   NamedRef
// @Failure  404  {object}  validation.ErrorResponse
// @Router   /book/publishers [get]
func (h *CatalogHandler) ListPublishers(c *gin.Context) {
	publishers, err := h.repo.ListPublishers(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "PUBLISHER_LIST_FAILED", "failed to list publishers")
		return
	}

	out := make([]NamedRef, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, NamedRef{ID: p.ID, Name: p.Name})
	}
	respondNamedList(c, out, "no publishers found")
}

// ListSeries godoc
// @Summary  List series
// @Tags     catalog
// @Produce  json
// @Success  200  {array}   NamedRef
// @Failure  404  {object}  validation.ErrorResponse
// @Router   /book/series [get]
func (h *CatalogHandler) ListSeries(c *gin.Context) {
	series, err := h.repo.ListSeries(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "SERIES_LIST_FAILED", "failed to list series")
		return
	}

	out := make([]NamedRef, 0, len(series))
	for _, s := range series {
		out = append(out, NamedRef{ID: s.ID, Name: s.Name})
	}
	respondNamedList(c, out, "no series found")
}

// ListBookTypes godoc
// @Summary  List book types
// @Tags     catalog
// @Produce  json
// @Success  200  {array}   NamedRef
// @Failure  404  {object}  validation.ErrorResponse
// @Router   /book/types [get]
func (h *CatalogHandler) ListBookTypes(c *gin.Context) {
	types, err := h.repo.ListBookTypes(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "TYPE_LIST_FAILED", "failed to list book types")
		return
	}

	out := make([]NamedRef, 0, len(types))
	for _, t := range types {
		out = append(out, NamedRef{ID: t.ID, Name: t.Name})
	}
	respondNamedList(c, out, "no book types found")
}

func respondNamedList(c *gin.Context, items []NamedRef, emptyMessage string) {
	if len(items) == 0 {
		writeError(c, http.StatusNotFound, "NOT_FOUND", emptyMessage)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateAuthor godoc
// @Summary  Create an author
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload  body      CreateNamedRequest  true  "Author name"
// @Success  201      {object}  NamedRef
// @Failure  400      {object}  validation.ErrorResponse
// @Failure  409      {object}  validation.ErrorResponse  "Name already exists"
// @Router   /upload/author [post]
func (h *CatalogHandler) CreateAuthor(c *gin.Context) {
	var req CreateNamedRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author := model.Author{Name: req.Name}
	if err := h.repo.CreateAuthor(c.Request.Context(), &author); err != nil {
		h.writeCreateError(c, err, "author")
		return
	}

	c.JSON(http.StatusCreated, NamedRef{ID: author.ID, Name: author.Name})
}

// CreateSeries godoc
// @Summary  Create a series
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload  body      CreateNamedRequest  true  "Series name"
// @Success  201      {object}  NamedRef
// @Failure  400      {object}  validation.ErrorResponse
// @Failure  409      {object}  validation.ErrorResponse  "Name already exists"
// @Router   /upload/series [post]
func (h *CatalogHandler) CreateSeries(c *gin.Context) {
	var req CreateNamedRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	series := model.Series{Name: req.Name}
	if err := h.repo.CreateSeries(c.Request.Context(), &series); err != nil {
		h.writeCreateError(c, err, "series")
		return
	}

	c.JSON(http.StatusCreated, NamedRef{ID: series.ID, Name: series.Name})
}

// CreatePublisher godoc
// @Summary  Create a publisher
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload  body      CreateNamedRequest  true  "Publisher name"
// @Success  201      {object}  NamedRef
// @Failure  400      {object}  validation.ErrorResponse
// @Failure  409      {object}  validation.ErrorResponse  "Name already exists"
// @Router   /upload/publisher [post]
func (h *CatalogHandler) CreatePublisher(c *gin.Context) {
	var req CreateNamedRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	publisher := model.Publisher{Name: req.Name}
	if err := h.repo.CreatePublisher(c.Request.Context(), &publisher); err != nil {
		h.writeCreateError(c, err, "publisher")
		return
	}

	c.JSON(http.StatusCreated, NamedRef{ID: publisher.ID, Name: publisher.Name})
}

func (h *CatalogHandler) writeCreateError(c *gin.Context, err error, kind string) {
	if errors.Is(err, repository.ErrDuplicate) {
		writeErrorDetails(c, http.StatusConflict,
			"DUPLICATE_ENTRY",
			kind+" with this name already exists",
			err.Error(),
		)
		return
	}

	writeError(c, http.StatusInternalServerError,
		"CREATE_FAILED",
		"failed to create "+kind,
	)
}

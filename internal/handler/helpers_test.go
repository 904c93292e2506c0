package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bookden/books-api/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fakePresigner struct {
	calls int
	err   error
}

func (f *fakePresigner) PresignUpload(ctx context.Context, key string) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return "https://storage.test/put/" + key, "https://cdn.test/" + key, nil
}

func setupRouterWithPresigner(db *gorm.DB, p Presigner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	bookRepo := repository.NewGormBookRepository(db)
	catalogRepo := repository.NewGormCatalogRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)

	catalogHandler := NewCatalogHandler(catalogRepo)

	book := r.Group("/book")
	NewBookHandler(bookRepo).RegisterRoutes(book)
	catalogHandler.RegisterListRoutes(book)

	upload := r.Group("/upload")
	upload.Use(CORS("*"))
	NewUploadHandler(bookRepo, catalogRepo, p).RegisterRoutes(upload)
	catalogHandler.RegisterUploadRoutes(upload)

	customer := r.Group("/customer")
	NewCustomerHandler(orderRepo).RegisterRoutes(customer)

	return r
}

func setupRouter(db *gorm.DB) *gin.Engine {
	return setupRouterWithPresigner(db, &fakePresigner{})
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

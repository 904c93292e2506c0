package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/testutil"
)

func TestCreateCustomer_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	payload := map[string]any{
		"name":          "Linh Tran",
		"phone":         "0901234567",
		"email":         "linh@example.com",
		"address":       "5 Hang Ma",
		"street_number": "5",
	}

	w := doJSON(t, router, http.MethodPost, "/customer/create", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp CustomerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.ID == 0 {
		t.Errorf("expected non-zero customer id")
	}
	if resp.Phone != "0901234567" {
		t.Errorf("expected phone to round-trip, got %q", resp.Phone)
	}
}

func TestCreateCustomer_DuplicatePhone(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	testutil.SeedCustomer(t, db, "0901234567")

	payload := map[string]any{
		"phone":         "0901234567",
		"address":       "5 Hang Ma",
		"street_number": "5",
	}

	w := doJSON(t, router, http.MethodPost, "/customer/create", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateCustomer_PhoneLength(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	for _, phone := range []string{"090123456", "09012345678", ""} {
		w := doJSON(t, router, http.MethodPost, "/customer/create", map[string]any{
			"phone":         phone,
			"address":       "5 Hang Ma",
			"street_number": "5",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("phone %q: expected status 400, got %d", phone, w.Code)
		}
	}
}

func TestCreateOrder_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	customer := testutil.SeedCustomer(t, db, "0901234567")
	book1 := testutil.SeedBook(t, db, "Vol 1", "10.00")
	book2 := testutil.SeedBook(t, db, "Vol 2", "12.50")

	payload := map[string]any{
		"customer_id": customer.ID,
		"lines": []map[string]any{
			{"book_id": book1.ID, "quantity": 2, "price": "10.00"},
			{"book_id": book2.ID, "quantity": 1, "price": "12.50"},
		},
	}

	w := doJSON(t, router, http.MethodPost, "/customer/new-order", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Customer.ID != customer.ID {
		t.Errorf("expected customer id %d, got %d", customer.ID, resp.Customer.ID)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	if resp.Lines[0].Book.Title != "Vol 1" {
		t.Errorf("expected nested book title, got %q", resp.Lines[0].Book.Title)
	}
	if !resp.Lines[1].Price.Equal(testutil.MustDecimal(t, "12.50")) {
		t.Errorf("expected line price 12.50, got %s", resp.Lines[1].Price)
	}
}

func TestCreateOrder_UnknownBookIsAtomic(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	customer := testutil.SeedCustomer(t, db, "0901234567")
	book := testutil.SeedBook(t, db, "Vol 1", "10.00")

	payload := map[string]any{
		"customer_id": customer.ID,
		"lines": []map[string]any{
			{"book_id": book.ID, "quantity": 1, "price": "10.00"},
			{"book_id": 999999, "quantity": 1, "price": "10.00"},
		},
	}

	w := doJSON(t, router, http.MethodPost, "/customer/new-order", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var orders, lines int64
	if err := db.Model(&model.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("failed to count orders: %v", err)
	}
	if err := db.Model(&model.OrderLine{}).Count(&lines).Error; err != nil {
		t.Fatalf("failed to count order lines: %v", err)
	}
	if orders != 0 || lines != 0 {
		t.Errorf("expected no rows after failed order, got orders=%d lines=%d", orders, lines)
	}
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	book := testutil.SeedBook(t, db, "Vol 1", "10.00")

	payload := map[string]any{
		"customer_id": 424242,
		"lines": []map[string]any{
			{"book_id": book.ID, "quantity": 1, "price": "10.00"},
		},
	}

	w := doJSON(t, router, http.MethodPost, "/customer/new-order", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_EmptyLines(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	customer := testutil.SeedCustomer(t, db, "0901234567")

	w := doJSON(t, router, http.MethodPost, "/customer/new-order", map[string]any{
		"customer_id": customer.ID,
		"lines":       []map[string]any{},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_BadLinePrice(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	customer := testutil.SeedCustomer(t, db, "0901234567")
	book := testutil.SeedBook(t, db, "Vol 1", "10.00")

	w := doJSON(t, router, http.MethodPost, "/customer/new-order", map[string]any{
		"customer_id": customer.ID,
		"lines": []map[string]any{
			{"book_id": book.ID, "quantity": 1, "price": "10.005"},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

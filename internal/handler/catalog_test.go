package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bookden/books-api/internal/testutil"
)

func TestCreateAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doJSON(t, router, http.MethodPost, "/upload/author", map[string]any{
		"name": "Naoki Urasawa",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp NamedRef
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.ID == 0 || resp.Name != "Naoki Urasawa" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateAuthor_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	testutil.SeedAuthor(t, db, "Naoki Urasawa")

	w := doJSON(t, router, http.MethodPost, "/upload/author", map[string]any{
		"name": "Naoki Urasawa",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreatePublisher_MissingName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doJSON(t, router, http.MethodPost, "/upload/publisher", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListPublishers(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doJSON(t, router, http.MethodGet, "/book/publishers", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for empty listing, got %d", w.Code)
	}

	testutil.SeedPublisher(t, db, "Kim Dong")
	testutil.SeedPublisher(t, db, "Tre Publishing")

	w = doJSON(t, router, http.MethodGet, "/book/publishers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var got []NamedRef
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 publishers, got %d", len(got))
	}
}

func TestListSeriesAndTypes(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	testutil.SeedSeries(t, db, "Monster")
	testutil.SeedBookType(t, db, 1, "Light Novel")

	w := doJSON(t, router, http.MethodGet, "/book/series", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for series, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/book/types", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for types, got %d", w.Code)
	}
}

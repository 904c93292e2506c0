package testutil

import (
	"testing"

	"github.com/bookden/books-api/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens an isolated in-memory database with foreign key
// enforcement on, migrated to the full catalog schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Publisher{}, &model.Author{}, &model.Series{}, &model.BookType{},
		&model.Book{}, &model.BookCover{},
		&model.Customer{}, &model.Order{}, &model.OrderLine{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func MustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

func SeedPublisher(t *testing.T, db *gorm.DB, name string) model.Publisher {
	t.Helper()

	p := model.Publisher{Name: name}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed publisher %q: %v", name, err)
	}
	return p
}

func SeedAuthor(t *testing.T, db *gorm.DB, name string) model.Author {
	t.Helper()

	a := model.Author{Name: name}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}
	return a
}

func SeedSeries(t *testing.T, db *gorm.DB, name string) model.Series {
	t.Helper()

	s := model.Series{Name: name}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("failed to seed series %q: %v", name, err)
	}
	return s
}

// SeedBookType pins the id so tests can target the fixed type ids the
// filtered listing endpoints use.
func SeedBookType(t *testing.T, db *gorm.DB, id uint, name string) model.BookType {
	t.Helper()

	bt := model.BookType{ID: id, Name: name}
	if err := db.Create(&bt).Error; err != nil {
		t.Fatalf("failed to seed book type %q: %v", name, err)
	}
	return bt
}

func SeedBook(t *testing.T, db *gorm.DB, title, price string, opts ...func(*model.Book)) model.Book {
	t.Helper()

	b := model.Book{
		Title:       title,
		Price:       MustDecimal(t, price),
		Description: title + " description",
	}
	for _, opt := range opts {
		opt(&b)
	}

	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return b
}

func SeedCustomer(t *testing.T, db *gorm.DB, phone string) model.Customer {
	t.Helper()

	c := model.Customer{
		Phone:        phone,
		Address:      "12 Alley St",
		StreetNumber: "12",
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("failed to seed customer %q: %v", phone, err)
	}
	return c
}

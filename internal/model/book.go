package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed book-type ids seeded with the catalog schema. The filtered
// listing endpoints (/book/light-novels etc.) are bound to these.
const (
	BookTypeLightNovel uint = 1
	BookTypeManga      uint = 2
	BookTypeArtbook    uint = 3
	BookTypeReference  uint = 4
)

type Book struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"not null"`
	PageCount   *int
	Rating      *decimal.Decimal `gorm:"type:decimal(4,2)"`
	PublishedAt *time.Time
	Volume      *int

	PublisherID *uint
	SeriesID    *uint
	AuthorID    *uint
	BookTypeID  *uint

	Publisher *Publisher
	Series    *Series
	Author    *Author
	BookType  *BookType
	Cover     *BookCover `gorm:"foreignKey:BookID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookCover is the one-to-one cover-image record for a book, keyed by
// the book id so writing it again is an upsert, never a second row.
type BookCover struct {
	BookID      uint `gorm:"primaryKey"`
	CoverURL    *string
	AltCoverURL *string
	BackURL     *string
	BookmarkURL *string
	UpdatedAt   time.Time
}

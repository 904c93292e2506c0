package handler

import (
	"github.com/bookden/books-api/internal/model"
	"github.com/shopspring/decimal"
)

type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Cover struct {
	CoverURL    *string `json:"cover_url,omitempty"`
	AltCoverURL *string `json:"alt_cover_url,omitempty"`
	BackURL     *string `json:"back_url,omitempty"`
	BookmarkURL *string `json:"bookmark_url,omitempty"`
}

type BookDetail struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Price       decimal.Decimal  `json:"price" swaggertype:"string" example:"19.99"`
	Description string           `json:"description"`
	PageCount   *int             `json:"page_count,omitempty"`
	Rating      *decimal.Decimal `json:"rating,omitempty" swaggertype:"string" example:"4.50"`
	PublishedAt *model.Date      `json:"published_at,omitempty" swaggertype:"string" example:"2020-07-15"`
	Volume      *int             `json:"volume,omitempty"`
	Publisher   *NamedRef        `json:"publisher,omitempty"`
	Series      *NamedRef        `json:"series,omitempty"`
	Author      *NamedRef        `json:"author,omitempty"`
	BookType    *NamedRef        `json:"book_type,omitempty"`
	Cover       *Cover           `json:"cover,omitempty"`
}

type BookSummary struct {
	ID     uint            `json:"id"`
	Title  string          `json:"title"`
	Price  decimal.Decimal `json:"price" swaggertype:"string" example:"19.99"`
	Volume *int            `json:"volume,omitempty"`
	Cover  *Cover          `json:"cover,omitempty"`
}

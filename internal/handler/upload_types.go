package handler

import "github.com/bookden/books-api/internal/model"

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required,min=1"`
	Price       string      `json:"price" binding:"required"`
	Description string      `json:"description" binding:"required"`
	PageCount   *int        `json:"page_count" binding:"omitempty,min=1"`
	Rating      *string     `json:"rating"`
	PublishedAt *model.Date `json:"published_at" swaggertype:"string" example:"2020-07-15"`
	Volume      *int        `json:"volume" binding:"omitempty,min=1"`

	PublisherID *uint `json:"publisher_id" binding:"omitempty,min=1"`
	SeriesID    *uint `json:"series_id" binding:"omitempty,min=1"`
	AuthorID    *uint `json:"author_id" binding:"omitempty,min=1"`
	BookTypeID  *uint `json:"book_type_id" binding:"omitempty,min=1"`

	CoverURL    *string `json:"cover_url" binding:"omitempty,url"`
	AltCoverURL *string `json:"alt_cover_url" binding:"omitempty,url"`
	BackURL     *string `json:"back_url" binding:"omitempty,url"`
	BookmarkURL *string `json:"bookmark_url" binding:"omitempty,url"`
}

// cover returns the cover row to upsert alongside the book, or nil
// when no image URL was supplied.
func (r *CreateBookRequest) cover() *model.BookCover {
	if r.CoverURL == nil && r.AltCoverURL == nil && r.BackURL == nil && r.BookmarkURL == nil {
		return nil
	}
	return &model.BookCover{
		CoverURL:    r.CoverURL,
		AltCoverURL: r.AltCoverURL,
		BackURL:     r.BackURL,
		BookmarkURL: r.BookmarkURL,
	}
}

type PresignRequest struct {
	FileName string `json:"fileName" binding:"required,min=1"`
	MimeType string `json:"mimeType" binding:"required"`
}

type PresignResponse struct {
	URL       string `json:"url"`
	PublicURL string `json:"publicUrl"`
}

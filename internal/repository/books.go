package repository

import (
	"context"

	"github.com/bookden/books-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book, cover *model.BookCover) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Book, error)
	ListAll(ctx context.Context) ([]model.Book, error)
	ListByType(ctx context.Context, typeID uint) ([]model.Book, error)
	ListInSeries(ctx context.Context, seriesID uint) ([]model.Book, error)
	Delete(ctx context.Context, id uint) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create writes the book and, when cover-image URLs were supplied, the
// cover row in one transaction. The cover write is an upsert keyed by
// book id. Either both rows land or neither does.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book, cover *model.BookCover) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		if cover != nil {
			cover.BookID = book.ID
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(cover).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify(err)
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Publisher").
		Preload("Series").
		Preload("Author").
		Preload("BookType").
		Preload("Cover").
		First(&book, "id = ?", id).Error; err != nil {

		return nil, classify(err)
	}
	return &book, nil
}

func (r *GormBookRepository) SearchByTitle(ctx context.Context, title string) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Cover").
		Where("title LIKE ?", "%"+title+"%").
		Find(&books).Error; err != nil {

		return nil, classify(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Cover").
		Preload("BookType").
		Find(&books).Error; err != nil {

		return nil, classify(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListByType(ctx context.Context, typeID uint) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Cover").
		Where("book_type_id = ?", typeID).
		Find(&books).Error; err != nil {

		return nil, classify(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListInSeries(ctx context.Context, seriesID uint) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Cover").
		Where("series_id = ?", seriesID).
		Find(&books).Error; err != nil {

		return nil, classify(err)
	}
	return books, nil
}

// Delete removes the book and its cover row. Books still referenced by
// order lines are protected by the store's foreign key and surface as
// ErrForeignKey.
func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.BookCover{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Book{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return classify(err)
}

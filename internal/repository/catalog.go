package repository

import (
	"context"

	"github.com/bookden/books-api/internal/model"
	"gorm.io/gorm"
)

// CatalogRepository covers the reference tables a book points at.
// The Exists lookups back the pre-write integrity checks on optional
// foreign keys; creation is append-only (no delete path).
type CatalogRepository interface {
	CreatePublisher(ctx context.Context, p *model.Publisher) error
	CreateAuthor(ctx context.Context, a *model.Author) error
	CreateSeries(ctx context.Context, s *model.Series) error
	CreateBookType(ctx context.Context, t *model.BookType) error

	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	ListSeries(ctx context.Context) ([]model.Series, error)
	ListBookTypes(ctx context.Context) ([]model.BookType, error)

	PublisherExists(ctx context.Context, id uint) (bool, error)
	AuthorExists(ctx context.Context, id uint) (bool, error)
	SeriesExists(ctx context.Context, id uint) (bool, error)
	BookTypeExists(ctx context.Context, id uint) (bool, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) CreatePublisher(ctx context.Context, p *model.Publisher) error {
	return classify(r.db.WithContext(ctx).Create(p).Error)
}

func (r *GormCatalogRepository) CreateAuthor(ctx context.Context, a *model.Author) error {
	return classify(r.db.WithContext(ctx).Create(a).Error)
}

func (r *GormCatalogRepository) CreateSeries(ctx context.Context, s *model.Series) error {
	return classify(r.db.WithContext(ctx).Create(s).Error)
}

func (r *GormCatalogRepository) CreateBookType(ctx context.Context, t *model.BookType) error {
	return classify(r.db.WithContext(ctx).Create(t).Error)
}

func (r *GormCatalogRepository) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	var out []model.Publisher
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *GormCatalogRepository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var out []model.Author
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *GormCatalogRepository) ListSeries(ctx context.Context) ([]model.Series, error) {
	var out []model.Series
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *GormCatalogRepository) ListBookTypes(ctx context.Context) ([]model.BookType, error) {
	var out []model.BookType
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *GormCatalogRepository) PublisherExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &model.Publisher{}, id)
}

func (r *GormCatalogRepository) AuthorExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &model.Author{}, id)
}

func (r *GormCatalogRepository) SeriesExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &model.Series{}, id)
}

func (r *GormCatalogRepository) BookTypeExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &model.BookType{}, id)
}

func (r *GormCatalogRepository) exists(ctx context.Context, m any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

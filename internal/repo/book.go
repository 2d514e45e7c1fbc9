package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/book_library/internal/models"
)

// BookFilter narrows catalog listings; zero values mean "no constraint".
type BookFilter struct {
	MinRating     int
	PublishedDate int
	MaxPages      int
}

func (r *GormRepo) GetBook(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := r.DB.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

func (r *GormRepo) BookExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) ListBooks(ctx context.Context, f BookFilter, offset, limit int) (int64, []models.Book, error) {
	q := r.DB.WithContext(ctx).Model(&models.Book{})
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}
	if f.PublishedDate > 0 {
		q = q.Where("published_date = ?", f.PublishedDate)
	}
	if f.MaxPages > 0 {
		q = q.Where("page_number <= ?", f.MaxPages)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var books []models.Book
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&books).Error; err != nil {
		return 0, nil, err
	}
	return total, books, nil
}

func (r *GormRepo) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *GormRepo) CreateAuthor(ctx context.Context, author *models.Author) error {
	return createUnique(r.DB.WithContext(ctx), author, "author_name = ?", author.AuthorName)
}

func (r *GormRepo) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return createUnique(r.DB.WithContext(ctx), genre, "genre_name = ?", genre.GenreName)
}

func (r *GormRepo) CreateBook(ctx context.Context, book *models.Book) error {
	var author models.Author
	if err := r.DB.WithContext(ctx).First(&author, book.AuthorID).Error; err != nil {
		return translate(err)
	}
	var genre models.Genre
	if err := r.DB.WithContext(ctx).First(&genre, book.GenreID).Error; err != nil {
		return translate(err)
	}
	return createUnique(r.DB.WithContext(ctx), book, "title = ?", book.Title)
}

func (r *GormRepo) DeleteBook(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func createUnique[T any](db *gorm.DB, record *T, query string, arg any) error {
	var existing T
	err := db.Where(query, arg).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return translate(db.Create(record).Error)
}

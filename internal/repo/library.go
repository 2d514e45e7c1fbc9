package repo

import (
	"context"

	"github.com/Skotchmaster/book_library/internal/models"
)

// LibraryRow is a library entry joined with the catalog data a listing needs.
type LibraryRow struct {
	ID          uint    `json:"id"`
	BookID      uint    `json:"book_id"`
	Title       string  `json:"title"`
	AuthorName  string  `json:"author_name"`
	Description *string `json:"description,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
}

// Identity is the caller's resolved subject, as established by the auth
// middleware. Admins bypass the owner predicate on scoped lookups.
type Identity struct {
	UserID uint
	Admin  bool
}

// scopedEntry is the single lookup primitive for every mutating entry
// operation: an entry id alone is never enough, the row must also belong to
// the caller. A non-owner gets ErrNotFound, indistinguishable from the entry
// not existing.
func (r *GormRepo) scopedEntry(ctx context.Context, entryID uint, ident Identity) (*models.LibraryEntry, error) {
	q := r.DB.WithContext(ctx).Where("id = ?", entryID)
	if !ident.Admin {
		q = q.Where("user_id = ?", ident.UserID)
	}
	var entry models.LibraryEntry
	if err := q.First(&entry).Error; err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

func (r *GormRepo) ListEntries(ctx context.Context, ownerID uint) ([]LibraryRow, error) {
	rows := []LibraryRow{}
	err := r.DB.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Select("library_entries.id, library_entries.book_id, books.title, authors.author_name, library_entries.description, library_entries.rating").
		Joins("JOIN books ON books.id = library_entries.book_id").
		Joins("JOIN authors ON authors.id = books.author_id").
		Where("library_entries.user_id = ?", ownerID).
		Order("library_entries.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) CreateEntry(ctx context.Context, entry *models.LibraryEntry) error {
	exists, err := r.BookExists(ctx, entry.BookID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return translate(r.DB.WithContext(ctx).Create(entry).Error)
}

func (r *GormRepo) UpdateEntry(ctx context.Context, entryID uint, ident Identity, description *string, rating *int) (*models.LibraryEntry, error) {
	entry, err := r.scopedEntry(ctx, entryID, ident)
	if err != nil {
		return nil, err
	}
	if description != nil {
		entry.Description = description
	}
	if rating != nil {
		entry.Rating = rating
	}
	if err := r.DB.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *GormRepo) DeleteEntry(ctx context.Context, entryID uint, ident Identity) error {
	entry, err := r.scopedEntry(ctx, entryID, ident)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(&models.LibraryEntry{}, entry.ID).Error
}

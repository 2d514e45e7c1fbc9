package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type Author struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorName string `gorm:"unique;not null"          json:"author_name"`
}

type Genre struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	GenreName string `gorm:"unique;not null"          json:"genre_name"`
}

type Book struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string  `gorm:"unique;not null"          json:"title"`
	AuthorID      uint    `gorm:"index;not null"           json:"author_id"`
	GenreID       uint    `gorm:"index;not null"           json:"genre_id"`
	PublishedDate int     `json:"published_date"`
	PageNumber    int     `json:"page_number"`
	Price         float64 `json:"price"`
	Rating        int     `json:"rating"`
	Synopsis      string  `json:"synopsis"`
}

// LibraryEntry is one row of a user's personal library: a reference to a
// catalog book plus that user's private notes. Rows are only ever read or
// written through the owner's identity, except for admin access.
type LibraryEntry struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint    `gorm:"index;not null"           json:"user_id"`
	BookID      uint    `gorm:"index;not null"           json:"book_id"`
	Description *string `json:"description,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
}

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceholderCoverURL is used when no cover image could be resolved for a book.
const PlaceholderCoverURL = "/static/images/placeholder-cover.png"

// BookDB represents a book row in the database
type BookDB struct {
	BookID          uuid.UUID       `json:"book_id" db:"book_id"`
	ISBN13          string          `json:"isbn13" db:"isbn13"`
	Title           string          `json:"title" db:"title"`
	Author          string          `json:"author" db:"author"`
	Genre           *string         `json:"genre,omitempty" db:"genre"`
	Summary         *string         `json:"summary,omitempty" db:"summary"`
	CoverImageURL   *string         `json:"cover_image_url,omitempty" db:"cover_image_url"`
	PublicationDate *time.Time      `json:"publication_date,omitempty" db:"publication_date"`
	PageCount       int             `json:"page_count" db:"page_count"`
	AverageRating   decimal.Decimal `json:"average_rating" db:"average_rating"` // Maintained by the reviews trigger only
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// averageRatingScale matches the NUMERIC(4,2) column.
const averageRatingScale = 2

// MarshalJSON renders average_rating as a JSON number with two decimals,
// e.g. 8.50, instead of decimal's default quoted "8.5".
func (b BookDB) MarshalJSON() ([]byte, error) {
	type plain BookDB
	return json.Marshal(struct {
		plain
		AverageRating json.Number `json:"average_rating"`
	}{
		plain:         plain(b),
		AverageRating: json.Number(b.AverageRating.StringFixed(averageRatingScale)),
	})
}

// BookTitle is the id/title pair used by favorite book pickers.
type BookTitle struct {
	BookID uuid.UUID `json:"book_id" db:"book_id"`
	Title  string    `json:"title" db:"title"`
}

// BookDetails is a book together with the reviews posted for it.
type BookDetails struct {
	Book    BookDB             `json:"book"`
	Reviews []ReviewWithAuthor `json:"reviews"`
}

// BookParams holds the writable book columns.
type BookParams struct {
	ISBN13          string
	Title           string
	Author          string
	Genre           *string
	Summary         *string
	CoverImageURL   *string
	PublicationDate *time.Time
	PageCount       int
}

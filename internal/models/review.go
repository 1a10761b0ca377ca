package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a review row in the database
type ReviewDB struct {
	ReviewID         uuid.UUID `json:"review_id" db:"review_id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	BookID           uuid.UUID `json:"book_id" db:"book_id"`
	Rating           int       `json:"rating" db:"rating"` // 1..10
	ShortDescription string    `json:"short_description" db:"short_description"`
	LongDescription  *string   `json:"long_description,omitempty" db:"long_description"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewWithBook is a review joined with the reviewed book's title.
type ReviewWithBook struct {
	ReviewDB
	BookTitle string `json:"book_title" db:"book_title"`
}

// ReviewWithAuthor is a review joined with the reviewer's display name.
type ReviewWithAuthor struct {
	ReviewDB
	ReviewerFirstName string `json:"reviewer_first_name" db:"reviewer_first_name"`
	ReviewerLastName  string `json:"reviewer_last_name" db:"reviewer_last_name"`
}

// ReviewCreate holds the columns written when a review is posted.
type ReviewCreate struct {
	BookID           uuid.UUID
	Rating           int
	ShortDescription string
	LongDescription  *string
}

// ReviewUpdate holds the columns a reviewer may edit.
type ReviewUpdate struct {
	Rating           int
	ShortDescription string
	LongDescription  *string
}

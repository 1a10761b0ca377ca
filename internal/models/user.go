package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`                   // Primary key
	Email          string     `json:"email" db:"email"`                       // Unique login email
	PasswordHash   string     `json:"-" db:"password_hash"`                   // bcrypt hash, never serialized
	FirstName      string     `json:"first_name" db:"first_name"`             // Display first name
	LastName       string     `json:"last_name" db:"last_name"`               // Display last name
	Bio            *string    `json:"bio,omitempty" db:"bio"`                 // Free-form profile text
	PhoneNumber    *string    `json:"phone_number,omitempty" db:"phone_number"`
	FavoriteColor  *string    `json:"favorite_color,omitempty" db:"favorite_color"`
	FavoriteBookID *uuid.UUID `json:"favorite_book_id,omitempty" db:"favorite_book_id"` // Nulled when the book is deleted
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// UserProfile is a user joined with the title of their favorite book.
type UserProfile struct {
	UserDB
	FavoriteBookTitle *string `json:"favorite_book_title,omitempty" db:"favorite_book_title"`
}

// UserCreate holds the columns written when a user registers.
type UserCreate struct {
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Bio           *string
	PhoneNumber   *string
	FavoriteColor *string
}

// ProfileUpdate holds the editable profile columns.
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	Bio            *string
	PhoneNumber    *string
	FavoriteColor  *string
	FavoriteBookID *uuid.UUID
}

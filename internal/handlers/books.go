package handlers

//go:generate mockgen -source=books.go -destination=books_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// BookCreator adds books to the catalogue.
type BookCreator interface {
	Create(ctx context.Context, params models.BookParams) (*models.BookDB, error)
}

// BookGetter reads one book with its reviews.
type BookGetter interface {
	GetWithReviews(ctx context.Context, bookID uuid.UUID) (*models.BookDetails, error)
}

// BookLister lists the catalogue.
type BookLister interface {
	List(ctx context.Context) ([]models.BookDB, error)
}

// UnreviewedBookLister lists books the caller has not reviewed.
type UnreviewedBookLister interface {
	ListNotReviewedBy(ctx context.Context, userID uuid.UUID) ([]models.BookDB, error)
}

// BookTitleLister lists id/title pairs.
type BookTitleLister interface {
	ListTitles(ctx context.Context) ([]models.BookTitle, error)
}

// BookUpdater edits books.
type BookUpdater interface {
	Update(ctx context.Context, bookID uuid.UUID, params models.BookParams) (*models.BookDB, error)
}

// BookDeleter removes books.
type BookDeleter interface {
	Delete(ctx context.Context, bookID uuid.UUID) error
}

const dateLayout = "2006-01-02"

// BookRequest represents the JSON body for creating or replacing a book
// swagger:model BookRequest
type BookRequest struct {
	// 13 digit ISBN
	// required: true
	// default: 9780134190440
	ISBN13 string `json:"isbn13" validate:"required,isbn13"`
	// required: true
	Title string `json:"title" validate:"required,max=255"`
	// required: true
	Author  string  `json:"author" validate:"required,max=255"`
	Genre   *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Summary *string `json:"summary,omitempty" validate:"omitempty,max=5000"`
	// Looked up by ISBN when omitted
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url,max=512"`
	// YYYY-MM-DD
	PublicationDate *string `json:"publication_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	// required: true
	PageCount int `json:"page_count" validate:"gt=0"`
}

func (req BookRequest) params() models.BookParams {
	params := models.BookParams{
		ISBN13:        req.ISBN13,
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		Summary:       req.Summary,
		CoverImageURL: req.CoverImageURL,
		PageCount:     req.PageCount,
	}
	if req.PublicationDate != nil {
		// Already checked by the datetime tag.
		if date, err := time.Parse(dateLayout, *req.PublicationDate); err == nil {
			params.PublicationDate = &date
		}
	}
	return params
}

// NewListBooksHandler lists every book ordered by title.
// @Summary List books
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BookDB
// @Failure 401 {object} handlers.ErrorResponse
// @Router /books [get]
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(books))
	}
}

// NewListUnreviewedBooksHandler lists books the caller has not reviewed yet.
// @Summary List books not reviewed by the caller
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BookDB
// @Failure 401 {object} handlers.ErrorResponse
// @Router /books/unreviewed [get]
func NewListUnreviewedBooksHandler(svc UnreviewedBookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}

		books, err := svc.ListNotReviewedBy(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(books))
	}
}

// NewListBookTitlesHandler lists id/title pairs for favorite book pickers.
// @Summary List book titles
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BookTitle
// @Router /books/titles [get]
func NewListBookTitlesHandler(svc BookTitleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titles, err := svc.ListTitles(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(titles))
	}
}

// NewGetBookHandler returns a book with its reviews.
// @Summary Get book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookID path string true "Book ID"
// @Success 200 {object} models.BookDetails
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /books/{bookID} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, ok := uuidParam(w, r, "bookID")
		if !ok {
			return
		}

		details, err := svc.GetWithReviews(r.Context(), bookID)
		if err != nil {
			writeError(w, err)
			return
		}
		details.Reviews = nonNil(details.Reviews)
		writeJSON(w, http.StatusOK, details)
	}
}

// NewCreateBookHandler adds a book.
// @Summary Create book
// @Description Adds a book. When no cover URL is given it is looked up by ISBN, falling back to a placeholder.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookRequest body handlers.BookRequest true "Book"
// @Success 201 {object} models.BookDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "ISBN already exists"
// @Router /books [post]
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		book, err := svc.Create(r.Context(), req.params())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, book)
	}
}

// NewUpdateBookHandler replaces a book's fields.
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookID path string true "Book ID"
// @Param bookRequest body handlers.BookRequest true "Book"
// @Success 200 {object} models.BookDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /books/{bookID} [put]
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, ok := uuidParam(w, r, "bookID")
		if !ok {
			return
		}

		var req BookRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		book, err := svc.Update(r.Context(), bookID, req.params())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, book)
	}
}

// NewDeleteBookHandler removes a book with its reviews.
// @Summary Delete book
// @Tags books
// @Security BearerAuth
// @Param bookID path string true "Book ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Router /books/{bookID} [delete]
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, ok := uuidParam(w, r, "bookID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), bookID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

package handlers

//go:generate mockgen -source=reviews.go -destination=reviews_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// ReviewCreator posts reviews.
type ReviewCreator interface {
	Create(ctx context.Context, userID uuid.UUID, params models.ReviewCreate) (*models.ReviewDB, error)
}

// ReviewGetter reads one review.
type ReviewGetter interface {
	Get(ctx context.Context, reviewID uuid.UUID) (*models.ReviewWithBook, error)
}

// UserReviewLister lists the caller's reviews.
type UserReviewLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReviewWithBook, error)
}

// BookReviewLister lists the reviews of a book.
type BookReviewLister interface {
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.ReviewWithAuthor, error)
}

// ReviewUpdater edits the caller's reviews.
type ReviewUpdater interface {
	Update(ctx context.Context, reviewID, userID uuid.UUID, params models.ReviewUpdate) (*models.ReviewDB, error)
}

// ReviewDeleter removes the caller's reviews.
type ReviewDeleter interface {
	Delete(ctx context.Context, reviewID, userID uuid.UUID) error
}

// ReviewCreateRequest represents the JSON body for posting a review
// swagger:model ReviewCreateRequest
type ReviewCreateRequest struct {
	// required: true
	BookID uuid.UUID `json:"book_id" validate:"required"`
	// 1 to 10
	// required: true
	Rating int `json:"rating" validate:"gte=1,lte=10"`
	// required: true
	ShortDescription string  `json:"short_description" validate:"required,max=255"`
	LongDescription  *string `json:"long_description,omitempty" validate:"omitempty,max=5000"`
}

// ReviewUpdateRequest represents the JSON body for editing a review
// swagger:model ReviewUpdateRequest
type ReviewUpdateRequest struct {
	// 1 to 10
	// required: true
	Rating int `json:"rating" validate:"gte=1,lte=10"`
	// required: true
	ShortDescription string  `json:"short_description" validate:"required,max=255"`
	LongDescription  *string `json:"long_description,omitempty" validate:"omitempty,max=5000"`
}

// NewListMyReviewsHandler lists the caller's reviews, newest first.
// @Summary List my reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ReviewWithBook
// @Failure 401 {object} handlers.ErrorResponse
// @Router /reviews [get]
func NewListMyReviewsHandler(svc UserReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}

		reviews, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(reviews))
	}
}

// NewListBookReviewsHandler lists the reviews of one book, newest first.
// @Summary List reviews of a book
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param bookID path string true "Book ID"
// @Success 200 {array} models.ReviewWithAuthor
// @Failure 400 {object} handlers.ErrorResponse
// @Router /books/{bookID}/reviews [get]
func NewListBookReviewsHandler(svc BookReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, ok := uuidParam(w, r, "bookID")
		if !ok {
			return
		}

		reviews, err := svc.ListByBook(r.Context(), bookID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(reviews))
	}
}

// NewGetReviewHandler returns one review.
// @Summary Get review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param reviewID path string true "Review ID"
// @Success 200 {object} models.ReviewWithBook
// @Failure 404 {object} handlers.ErrorResponse
// @Router /reviews/{reviewID} [get]
func NewGetReviewHandler(svc ReviewGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, ok := uuidParam(w, r, "reviewID")
		if !ok {
			return
		}

		review, err := svc.Get(r.Context(), reviewID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, review)
	}
}

// NewCreateReviewHandler posts a review by the caller.
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewCreateRequest body handlers.ReviewCreateRequest true "Review"
// @Success 201 {object} models.ReviewDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Failure 409 {object} handlers.ErrorResponse "Book already reviewed"
// @Router /reviews [post]
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}

		var req ReviewCreateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		review, err := svc.Create(r.Context(), userID, models.ReviewCreate{
			BookID:           req.BookID,
			Rating:           req.Rating,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, review)
	}
}

// NewUpdateReviewHandler edits one of the caller's reviews.
// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewID path string true "Review ID"
// @Param reviewUpdateRequest body handlers.ReviewUpdateRequest true "Review"
// @Success 200 {object} models.ReviewDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Review not found or not owned by caller"
// @Router /reviews/{reviewID} [put]
func NewUpdateReviewHandler(svc ReviewUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}
		reviewID, ok := uuidParam(w, r, "reviewID")
		if !ok {
			return
		}

		var req ReviewUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		review, err := svc.Update(r.Context(), reviewID, userID, models.ReviewUpdate{
			Rating:           req.Rating,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, review)
	}
}

// NewDeleteReviewHandler deletes one of the caller's reviews.
// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param reviewID path string true "Review ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Review not found or not owned by caller"
// @Router /reviews/{reviewID} [delete]
func NewDeleteReviewHandler(svc ReviewDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}
		reviewID, ok := uuidParam(w, r, "reviewID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), reviewID, userID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

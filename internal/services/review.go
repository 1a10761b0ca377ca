package services

//go:generate mockgen -source=review.go -destination=review_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("book already reviewed by this user")
)

// ReviewReader defines read-only operations for reviews.
type ReviewReader interface {
	GetByID(ctx context.Context, reviewID uuid.UUID) (*models.ReviewWithBook, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReviewWithBook, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.ReviewWithAuthor, error)
}

// ReviewWriter defines owner scoped write operations for reviews.
type ReviewWriter interface {
	Create(ctx context.Context, userID uuid.UUID, params models.ReviewCreate) (*models.ReviewDB, error)
	Update(ctx context.Context, reviewID, userID uuid.UUID, params models.ReviewUpdate) (*models.ReviewDB, error)
	Delete(ctx context.Context, reviewID, userID uuid.UUID) (*models.ReviewDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ReviewService handles review operations and Kafka publishing.
type ReviewService struct {
	reader      ReviewReader
	writer      ReviewWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewReviewService creates a new ReviewService. kafkaWriter may be nil.
func NewReviewService(reader ReviewReader, writer ReviewWriter, kafkaWriter KafkaWriter) *ReviewService {
	return &ReviewService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// publishEvent publishes a review mutation to Kafka keyed by book.
func (s *ReviewService) publishEvent(ctx context.Context, operation string, review *models.ReviewDB) {
	event := models.ReviewEvent{
		EventID:   uuid.New().String(),
		Timestamp: s.now().Unix(),
		Operation: operation,
		ReviewID:  review.ReviewID.String(),
		UserID:    review.UserID.String(),
		BookID:    review.BookID.String(),
		Rating:    review.Rating,
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "operation", operation)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal review event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BookID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish review event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Review event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

// Create posts a review by userID.
func (s *ReviewService) Create(ctx context.Context, userID uuid.UUID, params models.ReviewCreate) (*models.ReviewDB, error) {
	review, err := s.writer.Create(ctx, userID, params)
	if err != nil {
		switch {
		case repositories.IsConstraint(err, "reviews_user_id_book_id_key"):
			logger.Log.Errorw("book already reviewed", "userID", userID, "bookID", params.BookID)
			return nil, ErrAlreadyReviewed
		case repositories.IsConstraint(err, "reviews_book_id_fkey"):
			return nil, ErrBookNotFound
		case repositories.IsConstraint(err, "reviews_user_id_fkey"):
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to create review", "userID", userID, "bookID", params.BookID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.ReviewCreated, review)
	return review, nil
}

// Get returns one review with the reviewed book's title.
func (s *ReviewService) Get(ctx context.Context, reviewID uuid.UUID) (*models.ReviewWithBook, error) {
	review, err := s.reader.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		logger.Log.Errorw("failed to get review", "reviewID", reviewID, "err", err)
		return nil, err
	}
	return review, nil
}

// ListByUser returns the reviews written by userID, newest first.
func (s *ReviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReviewWithBook, error) {
	reviews, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user reviews", "userID", userID, "err", err)
		return nil, err
	}
	return reviews, nil
}

// ListByBook returns the reviews posted for bookID, newest first.
func (s *ReviewService) ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.ReviewWithAuthor, error) {
	reviews, err := s.reader.ListByBook(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to list book reviews", "bookID", bookID, "err", err)
		return nil, err
	}
	return reviews, nil
}

// Update edits a review owned by userID. Reviews of other users are reported
// as not found.
func (s *ReviewService) Update(ctx context.Context, reviewID, userID uuid.UUID, params models.ReviewUpdate) (*models.ReviewDB, error) {
	review, err := s.writer.Update(ctx, reviewID, userID, params)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("review not found for owner", "reviewID", reviewID, "userID", userID)
			return nil, ErrReviewNotFound
		}
		logger.Log.Errorw("failed to update review", "reviewID", reviewID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.ReviewUpdated, review)
	return review, nil
}

// Delete removes a review owned by userID.
func (s *ReviewService) Delete(ctx context.Context, reviewID, userID uuid.UUID) error {
	review, err := s.writer.Delete(ctx, reviewID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("review not found for owner", "reviewID", reviewID, "userID", userID)
			return ErrReviewNotFound
		}
		logger.Log.Errorw("failed to delete review", "reviewID", reviewID, "err", err)
		return err
	}

	s.publishEvent(ctx, models.ReviewDeleted, review)
	return nil
}

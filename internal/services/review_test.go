package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()
	params := models.ReviewCreate{BookID: bookID, Rating: 8, ShortDescription: "good"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockReviewWriter(ctrl)
	kw := NewMockKafkaWriter(ctrl)

	created := &models.ReviewDB{ReviewID: uuid.New(), UserID: userID, BookID: bookID, Rating: 8}
	writer.EXPECT().Create(ctx, userID, params).Return(created, nil)
	kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, bookID.String(), string(msgs[0].Key))

			var event models.ReviewEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.ReviewCreated, event.Operation)
			assert.Equal(t, created.ReviewID.String(), event.ReviewID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 8, event.Rating)
			assert.Equal(t, int64(1700000000), event.Timestamp)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	svc := NewReviewService(NewMockReviewReader(ctrl), writer, kw)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	review, err := svc.Create(ctx, userID, params)
	require.NoError(t, err)
	assert.Equal(t, created, review)
}

func TestReviewService_Create_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	params := models.ReviewCreate{BookID: uuid.New(), Rating: 8, ShortDescription: "good"}

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			name:    "already reviewed",
			repoErr: &repositories.ConstraintError{Kind: repositories.ConstraintUnique, Constraint: "reviews_user_id_book_id_key"},
			wantErr: ErrAlreadyReviewed,
		},
		{
			name:    "unknown book",
			repoErr: &repositories.ConstraintError{Kind: repositories.ConstraintForeignKey, Constraint: "reviews_book_id_fkey"},
			wantErr: ErrBookNotFound,
		},
		{
			name:    "rating out of range",
			repoErr: &repositories.ConstraintError{Kind: repositories.ConstraintCheck, Constraint: "reviews_rating_check"},
			wantErr: repositories.ErrConstraintViolation,
		},
		{
			name:    "store down",
			repoErr: repositories.ErrTransient,
			wantErr: repositories.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockReviewWriter(ctrl)
			// No publish expected on failure.
			kw := NewMockKafkaWriter(ctrl)
			writer.EXPECT().Create(ctx, userID, params).Return(nil, tt.repoErr)

			svc := NewReviewService(NewMockReviewReader(ctrl), writer, kw)
			review, err := svc.Create(ctx, userID, params)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, review)
		})
	}
}

func TestReviewService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	userID := uuid.New()
	bookID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockReviewWriter(ctrl)
	kw := NewMockKafkaWriter(ctrl)
	svc := NewReviewService(NewMockReviewReader(ctrl), writer, kw)

	operations := []string{}
	kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			var event models.ReviewEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			operations = append(operations, event.Operation)
			return nil
		}).Times(2)

	params := models.ReviewUpdate{Rating: 3, ShortDescription: "meh"}
	stored := &models.ReviewDB{ReviewID: reviewID, UserID: userID, BookID: bookID, Rating: 3}

	writer.EXPECT().Update(ctx, reviewID, userID, params).Return(stored, nil)
	updated, err := svc.Update(ctx, reviewID, userID, params)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)

	writer.EXPECT().Delete(ctx, reviewID, userID).Return(stored, nil)
	require.NoError(t, svc.Delete(ctx, reviewID, userID))

	assert.Equal(t, []string{models.ReviewUpdated, models.ReviewDeleted}, operations)
}

func TestReviewService_NotOwner(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	stranger := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockReviewWriter(ctrl)
	svc := NewReviewService(NewMockReviewReader(ctrl), writer, NewMockKafkaWriter(ctrl))

	writer.EXPECT().Update(ctx, reviewID, stranger, gomock.Any()).Return(nil, repositories.ErrNotFound)
	_, err := svc.Update(ctx, reviewID, stranger, models.ReviewUpdate{Rating: 1, ShortDescription: "x"})
	assert.ErrorIs(t, err, ErrReviewNotFound)

	writer.EXPECT().Delete(ctx, reviewID, stranger).Return(nil, repositories.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, reviewID, stranger), ErrReviewNotFound)
}

func TestReviewService_PublishFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockReviewWriter(ctrl)
	kw := NewMockKafkaWriter(ctrl)

	writer.EXPECT().Create(ctx, userID, gomock.Any()).Return(&models.ReviewDB{ReviewID: uuid.New()}, nil)
	kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	svc := NewReviewService(NewMockReviewReader(ctrl), writer, kw)
	_, err := svc.Create(ctx, userID, models.ReviewCreate{BookID: uuid.New(), Rating: 5, ShortDescription: "ok"})
	assert.NoError(t, err)
}

func TestReviewService_NoKafkaWriter(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockReviewWriter(ctrl)
	writer.EXPECT().Create(ctx, userID, gomock.Any()).Return(&models.ReviewDB{ReviewID: uuid.New()}, nil)

	svc := NewReviewService(NewMockReviewReader(ctrl), writer, nil)
	_, err := svc.Create(ctx, userID, models.ReviewCreate{BookID: uuid.New(), Rating: 5, ShortDescription: "ok"})
	assert.NoError(t, err)
}

func TestReviewService_Reads(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	userID := uuid.New()
	bookID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockReviewReader(ctrl)
	svc := NewReviewService(reader, NewMockReviewWriter(ctrl), nil)

	reader.EXPECT().GetByID(ctx, reviewID).Return(&models.ReviewWithBook{BookTitle: "Dune"}, nil)
	review, err := svc.Get(ctx, reviewID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", review.BookTitle)

	reader.EXPECT().GetByID(ctx, reviewID).Return(nil, repositories.ErrNotFound)
	_, err = svc.Get(ctx, reviewID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	reader.EXPECT().ListByUser(ctx, userID).Return([]models.ReviewWithBook{{BookTitle: "Dune"}}, nil)
	mine, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	reader.EXPECT().ListByBook(ctx, bookID).Return(nil, repositories.ErrTransient)
	_, err = svc.ListByBook(ctx, bookID)
	assert.ErrorIs(t, err, repositories.ErrTransient)
}

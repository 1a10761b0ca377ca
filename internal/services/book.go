package services

//go:generate mockgen -source=book.go -destination=book_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")
)

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	GetByISBN(ctx context.Context, isbn13 string) (*models.BookDB, error)
	List(ctx context.Context) ([]models.BookDB, error)
	ListNotReviewedBy(ctx context.Context, userID uuid.UUID) ([]models.BookDB, error)
	ListTitles(ctx context.Context) ([]models.BookTitle, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Create(ctx context.Context, params models.BookParams) (*models.BookDB, error)
	Update(ctx context.Context, bookID uuid.UUID, params models.BookParams) (*models.BookDB, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// CoverLookup resolves a cover image URL from an external catalogue.
type CoverLookup interface {
	CoverURL(ctx context.Context, isbn13 string) (string, error)
}

// CoverCache stores resolved cover URLs by ISBN.
type CoverCache interface {
	GetCover(ctx context.Context, isbn13 string) (string, error)
	SetCover(ctx context.Context, isbn13, coverURL string) error
}

// BookService manages the catalogue. lookup and cache are optional.
type BookService struct {
	reader  BookReader
	writer  BookWriter
	reviews ReviewReader
	lookup  CoverLookup
	cache   CoverCache
}

// NewBookService creates a new BookService.
func NewBookService(
	reader BookReader,
	writer BookWriter,
	reviews ReviewReader,
	lookup CoverLookup,
	cache CoverCache,
) *BookService {
	return &BookService{
		reader:  reader,
		writer:  writer,
		reviews: reviews,
		lookup:  lookup,
		cache:   cache,
	}
}

// Create adds a book. Without a caller supplied cover the cover is resolved
// by ISBN, falling back to the placeholder image.
func (s *BookService) Create(ctx context.Context, params models.BookParams) (*models.BookDB, error) {
	_, err := s.reader.GetByISBN(ctx, params.ISBN13)
	switch {
	case err == nil:
		logger.Log.Errorw("book already exists", "isbn", params.ISBN13)
		return nil, ErrDuplicateISBN
	case !errors.Is(err, repositories.ErrNotFound):
		logger.Log.Errorw("failed to check book exists", "isbn", params.ISBN13, "err", err)
		return nil, err
	}

	s.fillCover(ctx, &params)

	book, err := s.writer.Create(ctx, params)
	if err != nil {
		if repositories.IsConstraint(err, "books_isbn13_key") {
			return nil, ErrDuplicateISBN
		}
		logger.Log.Errorw("failed to create book", "isbn", params.ISBN13, "err", err)
		return nil, err
	}
	return book, nil
}

// Update replaces every writable column of the book.
func (s *BookService) Update(ctx context.Context, bookID uuid.UUID, params models.BookParams) (*models.BookDB, error) {
	s.fillCover(ctx, &params)

	book, err := s.writer.Update(ctx, bookID, params)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrBookNotFound
		case repositories.IsConstraint(err, "books_isbn13_key"):
			return nil, ErrDuplicateISBN
		}
		logger.Log.Errorw("failed to update book", "bookID", bookID, "err", err)
		return nil, err
	}
	return book, nil
}

// Delete removes the book, its reviews and any favorite references to it.
func (s *BookService) Delete(ctx context.Context, bookID uuid.UUID) error {
	if err := s.writer.Delete(ctx, bookID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookNotFound
		}
		logger.Log.Errorw("failed to delete book", "bookID", bookID, "err", err)
		return err
	}
	logger.Log.Infow("book deleted", "bookID", bookID)
	return nil
}

// GetWithReviews returns a book and every review posted for it.
func (s *BookService) GetWithReviews(ctx context.Context, bookID uuid.UUID) (*models.BookDetails, error) {
	book, err := s.reader.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		logger.Log.Errorw("failed to get book", "bookID", bookID, "err", err)
		return nil, err
	}

	reviews, err := s.reviews.ListByBook(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to list book reviews", "bookID", bookID, "err", err)
		return nil, err
	}

	return &models.BookDetails{Book: *book, Reviews: reviews}, nil
}

// List returns every book ordered by title.
func (s *BookService) List(ctx context.Context) ([]models.BookDB, error) {
	books, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, err
	}
	return books, nil
}

// ListNotReviewedBy returns the books userID has not reviewed yet.
func (s *BookService) ListNotReviewedBy(ctx context.Context, userID uuid.UUID) ([]models.BookDB, error) {
	books, err := s.reader.ListNotReviewedBy(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list unreviewed books", "userID", userID, "err", err)
		return nil, err
	}
	return books, nil
}

// ListTitles returns id/title pairs for favorite book pickers.
func (s *BookService) ListTitles(ctx context.Context) ([]models.BookTitle, error) {
	titles, err := s.reader.ListTitles(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list book titles", "err", err)
		return nil, err
	}
	return titles, nil
}

func (s *BookService) fillCover(ctx context.Context, params *models.BookParams) {
	if params.CoverImageURL != nil && *params.CoverImageURL != "" {
		return
	}
	cover := s.resolveCover(ctx, params.ISBN13)
	params.CoverImageURL = &cover
}

// resolveCover never fails: every miss or error ends at the placeholder.
func (s *BookService) resolveCover(ctx context.Context, isbn13 string) string {
	if s.cache != nil {
		cover, err := s.cache.GetCover(ctx, isbn13)
		if err == nil {
			return cover
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("cover cache unavailable", "isbn", isbn13, "err", err)
		}
	}

	if s.lookup == nil {
		return models.PlaceholderCoverURL
	}

	cover, err := s.lookup.CoverURL(ctx, isbn13)
	if err != nil {
		logger.Log.Warnw("cover lookup failed, using placeholder", "isbn", isbn13, "err", err)
		return models.PlaceholderCoverURL
	}

	if s.cache != nil {
		if err := s.cache.SetCover(ctx, isbn13, cover); err != nil {
			logger.Log.Warnw("failed to cache cover", "isbn", isbn13, "err", err)
		}
	}
	return cover
}

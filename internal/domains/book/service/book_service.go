package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/domains/publisher"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/logger"
)

// BookService implements book.Service. It owns the write-path ordering:
// field validation → title uniqueness (create only) → referential
// validation → storage.
type BookService struct {
	repo          book.Repository
	authorRepo    author.Repository
	publisherRepo publisher.Repository
	cache         cache.Cache
}

func NewService(
	repo book.Repository,
	authorRepo author.Repository,
	publisherRepo publisher.Repository,
	cache cache.Cache,
) book.Service {
	return &BookService{
		repo:          repo,
		authorRepo:    authorRepo,
		publisherRepo: publisherRepo,
		cache:         cache,
	}
}

const (
	bookListCacheKey = "books:list:all"
	bookListCacheTTL = 15 * time.Minute
)

// checkReferences confirms the referenced author and publisher exist.
// Both lookups run concurrently and are reported independently, so a
// request with two dangling references learns about both at once.
// Lookups go straight to storage; referential state is never cached.
func (s *BookService) checkReferences(ctx context.Context, authorID, publisherID uuid.UUID) error {
	var authorExists, publisherExists bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authorExists, err = s.authorRepo.ExistsByID(gctx, authorID)
		return err
	})
	g.Go(func() error {
		var err error
		publisherExists, err = s.publisherRepo.ExistsByID(gctx, publisherID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !authorExists || !publisherExists {
		return &book.ReferenceError{
			AuthorMissing:    !authorExists,
			PublisherMissing: !publisherExists,
		}
	}

	return nil
}

func (s *BookService) Create(ctx context.Context, req *book.BookInput) (*book.BookDetail, error) {
	// Field validation runs to completion first; referential checks are
	// only attempted once the input itself is well-formed.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrDuplicateTitle
	}

	// Validate() guarantees both ids parse.
	authorID := uuid.MustParse(req.Author)
	publisherID := uuid.MustParse(req.Publisher)

	if err := s.checkReferences(ctx, authorID, publisherID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &book.Book{
		Title:           req.Title,
		Year:            *req.Year,
		Genre:           req.Genre,
		PageCount:       *req.PageCount,
		AuthorID:        authorID,
		PublisherID:     publisherID,
		BookCover:       req.BookCover,
		BookDescription: req.BookDescription,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, bookListCacheKey)

	logger.Info("Book created", map[string]interface{}{
		"id":    created.ID,
		"title": created.Title,
	})

	return s.repo.GetByID(ctx, created.ID)
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookDetail, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll returns every book with references expanded. The result is cached
// since the SPA client polls this endpoint; every write invalidates it.
func (s *BookService) ListAll(ctx context.Context) ([]book.BookDetail, error) {
	var cached []book.BookDetail
	if found, err := s.cache.Get(ctx, bookListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []book.BookDetail{}
	}

	s.cache.Set(ctx, bookListCacheKey, books, bookListCacheTTL)

	return books, nil
}

func (s *BookService) Search(ctx context.Context, filter book.SearchFilter) (*book.BookDetail, error) {
	return s.repo.FindOne(ctx, filter)
}

func (s *BookService) Update(ctx context.Context, id uuid.UUID, req *book.BookInput) (*book.BookDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID := uuid.MustParse(req.Author)
	publisherID := uuid.MustParse(req.Publisher)

	if err := s.checkReferences(ctx, authorID, publisherID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &book.Book{
		ID:              id,
		Title:           req.Title,
		Year:            *req.Year,
		Genre:           req.Genre,
		PageCount:       *req.PageCount,
		AuthorID:        authorID,
		PublisherID:     publisherID,
		BookCover:       req.BookCover,
		BookDescription: req.BookDescription,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, bookListCacheKey)

	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, bookListCacheKey)

	return nil
}

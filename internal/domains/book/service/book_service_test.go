package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/domains/publisher"
)

// fakeBookRepo is an in-memory book.Repository for service tests.
type fakeBookRepo struct {
	books map[uuid.UUID]book.Book

	createCalls       int
	existsTitleCalls  int
	listCalls         int
	existingAuthor    author.Author
	existingPublisher publisher.Publisher
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID]book.Book)}
}

func (f *fakeBookRepo) detail(b book.Book) *book.BookDetail {
	return &book.BookDetail{
		ID:              b.ID,
		Title:           b.Title,
		Year:            b.Year,
		Genre:           b.Genre,
		PageCount:       b.PageCount,
		Author:          f.existingAuthor,
		Publisher:       f.existingPublisher,
		BookCover:       b.BookCover,
		BookDescription: b.BookDescription,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	f.createCalls++
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.books[created.ID] = created
	return &created, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.BookDetail, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return f.detail(b), nil
}

func (f *fakeBookRepo) ListAll(ctx context.Context) ([]book.BookDetail, error) {
	f.listCalls++
	var out []book.BookDetail
	for _, b := range f.books {
		out = append(out, *f.detail(b))
	}
	return out, nil
}

func (f *fakeBookRepo) FindOne(ctx context.Context, filter book.SearchFilter) (*book.BookDetail, error) {
	for _, b := range f.books {
		if filter.Title != "" && b.Title != filter.Title {
			continue
		}
		if filter.AuthorName != "" && f.existingAuthor.FullName != filter.AuthorName {
			continue
		}
		if filter.PublisherName != "" && f.existingPublisher.Name != filter.PublisherName {
			continue
		}
		return f.detail(b), nil
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book) (*book.BookDetail, error) {
	existing, ok := f.books[b.ID]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	updated := *b
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.books[b.ID] = updated
	return f.detail(updated), nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	f.existsTitleCalls++
	for _, b := range f.books {
		if b.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// fakeRefRepo backs the referential checks. Only ExistsByID is consulted by
// the book service; the rest of the interface is not reachable from it.
type fakeRefRepo struct {
	ids         map[uuid.UUID]bool
	existsCalls int
}

func newFakeRefRepo(ids ...uuid.UUID) *fakeRefRepo {
	m := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return &fakeRefRepo{ids: m}
}

func (f *fakeRefRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	f.existsCalls++
	return f.ids[id], nil
}

// fakeAuthorRefRepo adapts fakeRefRepo to author.Repository.
type fakeAuthorRefRepo struct{ *fakeRefRepo }

func (f fakeAuthorRefRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	panic("not used")
}
func (f fakeAuthorRefRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	panic("not used")
}
func (f fakeAuthorRefRepo) List(ctx context.Context, limit, offset int) ([]author.Author, int64, error) {
	panic("not used")
}
func (f fakeAuthorRefRepo) FindByFullName(ctx context.Context, fullName string) ([]author.Author, error) {
	panic("not used")
}
func (f fakeAuthorRefRepo) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	panic("not used")
}
func (f fakeAuthorRefRepo) Delete(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}
func (f fakeAuthorRefRepo) ExistsByFullName(ctx context.Context, fullName string) (bool, error) {
	panic("not used")
}

// fakePublisherRefRepo adapts fakeRefRepo to publisher.Repository.
type fakePublisherRefRepo struct{ *fakeRefRepo }

func (f fakePublisherRefRepo) Create(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	panic("not used")
}
func (f fakePublisherRefRepo) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	panic("not used")
}
func (f fakePublisherRefRepo) List(ctx context.Context, limit, offset int) ([]publisher.Publisher, int64, error) {
	panic("not used")
}
func (f fakePublisherRefRepo) FindByName(ctx context.Context, name string) (*publisher.Publisher, error) {
	panic("not used")
}
func (f fakePublisherRefRepo) Update(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	panic("not used")
}
func (f fakePublisherRefRepo) Delete(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}
func (f fakePublisherRefRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	panic("not used")
}

// fakeCache records sets and deletes; Get always misses unless primed.
type fakeCache struct {
	store   map[string]interface{}
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]interface{})}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
		f.deletes = append(f.deletes, key)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

type bookFixture struct {
	svc         book.Service
	repo        *fakeBookRepo
	authors     *fakeRefRepo
	publishers  *fakeRefRepo
	cache       *fakeCache
	authorID    uuid.UUID
	publisherID uuid.UUID
}

func newBookFixture() *bookFixture {
	authorID := uuid.New()
	publisherID := uuid.New()

	repo := newFakeBookRepo()
	repo.existingAuthor = author.Author{ID: authorID, FullName: "George Orwell"}
	repo.existingPublisher = publisher.Publisher{ID: publisherID, Name: "Secker & Warburg"}

	authors := newFakeRefRepo(authorID)
	publishers := newFakeRefRepo(publisherID)
	cache := newFakeCache()

	return &bookFixture{
		svc:         NewService(repo, fakeAuthorRefRepo{authors}, fakePublisherRefRepo{publishers}, cache),
		repo:        repo,
		authors:     authors,
		publishers:  publishers,
		cache:       cache,
		authorID:    authorID,
		publisherID: publisherID,
	}
}

func intPtr(v int) *int { return &v }

func (fx *bookFixture) validInput() *book.BookInput {
	return &book.BookInput{
		Title:     "Nineteen Eighty-Four",
		Year:      intPtr(1949),
		Genre:     "Dystopian fiction",
		PageCount: intPtr(328),
		Author:    fx.authorID.String(),
		Publisher: fx.publisherID.String(),
	}
}

func TestBookServiceCreate(t *testing.T) {
	fx := newBookFixture()

	created, err := fx.svc.Create(context.Background(), fx.validInput())

	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", created.Title)
	assert.Equal(t, "George Orwell", created.Author.FullName)
	assert.Equal(t, "Secker & Warburg", created.Publisher.Name)
}

// Field validation is checked before any repository access: a malformed
// input must not trigger uniqueness or existence lookups.
func TestBookServiceCreateFieldErrorsFirst(t *testing.T) {
	fx := newBookFixture()

	input := fx.validInput()
	input.Year = intPtr(99)
	input.Author = "not-a-uuid"

	_, err := fx.svc.Create(context.Background(), input)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "year")
	assert.Contains(t, errs, "author")

	assert.Zero(t, fx.repo.existsTitleCalls)
	assert.Zero(t, fx.authors.existsCalls)
	assert.Zero(t, fx.publishers.existsCalls)
	assert.Zero(t, fx.repo.createCalls)
}

func TestBookServiceCreateDuplicateTitle(t *testing.T) {
	fx := newBookFixture()

	_, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)

	_, err = fx.svc.Create(context.Background(), fx.validInput())
	assert.ErrorIs(t, err, book.ErrDuplicateTitle)
	assert.Equal(t, 1, fx.repo.createCalls)
}

func TestBookServiceCreateMissingAuthor(t *testing.T) {
	fx := newBookFixture()

	input := fx.validInput()
	input.Author = uuid.New().String()

	_, err := fx.svc.Create(context.Background(), input)

	var refErr *book.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.True(t, refErr.AuthorMissing)
	assert.False(t, refErr.PublisherMissing)
	assert.Equal(t, []string{"author"}, refErr.MissingRefs())

	// Nothing was persisted.
	assert.Zero(t, fx.repo.createCalls)
}

// Both dangling references are reported in one error, not just the first.
func TestBookServiceCreateBothReferencesMissing(t *testing.T) {
	fx := newBookFixture()

	input := fx.validInput()
	input.Author = uuid.New().String()
	input.Publisher = uuid.New().String()

	_, err := fx.svc.Create(context.Background(), input)

	var refErr *book.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.True(t, refErr.AuthorMissing)
	assert.True(t, refErr.PublisherMissing)
	assert.Equal(t, []string{"author", "publisher"}, refErr.MissingRefs())
	assert.Zero(t, fx.repo.createCalls)
}

func TestBookServiceListAll(t *testing.T) {
	fx := newBookFixture()

	_, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)

	books, err := fx.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBookServiceListAllEmptyIsNotNil(t *testing.T) {
	fx := newBookFixture()

	books, err := fx.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBookServiceSearch(t *testing.T) {
	fx := newBookFixture()

	_, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)

	found, err := fx.svc.Search(context.Background(), book.SearchFilter{
		Title:      "Nineteen Eighty-Four",
		AuthorName: "George Orwell",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", found.Title)

	_, err = fx.svc.Search(context.Background(), book.SearchFilter{Title: "Animal Farm"})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookServiceUpdate(t *testing.T) {
	fx := newBookFixture()

	created, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)

	input := fx.validInput()
	input.PageCount = intPtr(400)
	updated, err := fx.svc.Update(context.Background(), created.ID, input)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 400, updated.PageCount)
}

func TestBookServiceUpdateMissingBook(t *testing.T) {
	fx := newBookFixture()

	_, err := fx.svc.Update(context.Background(), uuid.New(), fx.validInput())
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// Update re-checks references: repointing a book at a deleted publisher is
// refused before storage is touched.
func TestBookServiceUpdateMissingPublisher(t *testing.T) {
	fx := newBookFixture()

	created, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)

	input := fx.validInput()
	input.Publisher = uuid.New().String()

	_, err = fx.svc.Update(context.Background(), created.ID, input)

	var refErr *book.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.True(t, refErr.PublisherMissing)
}

func TestBookServiceDelete(t *testing.T) {
	fx := newBookFixture()

	created, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)

	require.NoError(t, fx.svc.Delete(context.Background(), created.ID))

	// A second delete of the same id reports the miss.
	assert.ErrorIs(t, fx.svc.Delete(context.Background(), created.ID), book.ErrBookNotFound)
}

// Every write invalidates the cached book list.
func TestBookServiceWritesInvalidateListCache(t *testing.T) {
	fx := newBookFixture()

	created, err := fx.svc.Create(context.Background(), fx.validInput())
	require.NoError(t, err)
	assert.Contains(t, fx.cache.deletes, "books:list:all")

	_, err = fx.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Contains(t, fx.cache.store, "books:list:all")

	require.NoError(t, fx.svc.Delete(context.Background(), created.ID))
	assert.NotContains(t, fx.cache.store, "books:list:all")
}

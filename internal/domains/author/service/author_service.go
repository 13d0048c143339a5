package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/shared/utils"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/logger"
)

// AuthorService implements author.Service. List pages are cached here,
// above the repository, so the cached unit is the page response the
// handler serves; writes drop every cached page.
type AuthorService struct {
	repo  author.Repository
	cache cache.Cache
}

func NewService(repo author.Repository, cache cache.Cache) author.Service {
	return &AuthorService{repo: repo, cache: cache}
}

const (
	birthDateLayout     = "2006-01-02"
	authorListKeyPrefix = "authors:list:"
	authorListCacheTTL  = 15 * time.Minute
)

// Create validates the input, rejects duplicate full names and inserts the
// author. Field validation runs to completion first so that every violation
// is reported together.
func (s *AuthorService) Create(ctx context.Context, req *author.AuthorInput) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Uniqueness pre-check gives the friendly error on the sequential path;
	// the unique constraint in storage covers concurrent creates.
	exists, err := s.repo.ExistsByFullName(ctx, req.FullName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, author.ErrDuplicateName
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		// Validate() already checked the format; reaching here means the
		// rule chain and this parse disagree on the layout.
		return nil, err
	}

	created, err := s.repo.Create(ctx, &author.Author{
		FullName:    req.FullName,
		BirthDate:   birthDate,
		CityOfBirth: req.CityOfBirth,
		Email:       req.Email,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	logger.Info("Author created", map[string]interface{}{
		"id":       created.ID,
		"fullName": created.FullName,
	})

	return created, nil
}

func (s *AuthorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one fixed-size page of authors, 1-indexed, read through
// the cache per page.
func (s *AuthorService) List(ctx context.Context, page int) (*author.AuthorListResponse, error) {
	page = utils.NormalizePage(page)
	cacheKey := fmt.Sprintf("%s%d", authorListKeyPrefix, page)

	var cached author.AuthorListResponse
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	authors, total, err := s.repo.List(ctx, utils.PageSize, utils.PageOffset(page))
	if err != nil {
		return nil, err
	}

	if authors == nil {
		authors = []author.Author{}
	}

	resp := &author.AuthorListResponse{
		Authors:     authors,
		CurrentPage: page,
		TotalPages:  utils.TotalPages(total),
	}

	s.cache.Set(ctx, cacheKey, resp, authorListCacheTTL)

	return resp, nil
}

func (s *AuthorService) SearchByName(ctx context.Context, name string) ([]author.Author, error) {
	authors, err := s.repo.FindByFullName(ctx, name)
	if err != nil {
		return nil, err
	}
	if authors == nil {
		authors = []author.Author{}
	}
	return authors, nil
}

// Update re-validates the full input and replaces the author's fields.
// The duplicate pre-check applies on create only; the store's unique
// constraint still rejects a rename onto an existing name.
func (s *AuthorService) Update(ctx context.Context, id uuid.UUID, req *author.AuthorInput) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &author.Author{
		ID:          id,
		FullName:    req.FullName,
		BirthDate:   birthDate,
		CityOfBirth: req.CityOfBirth,
		Email:       req.Email,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return updated, nil
}

func (s *AuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *AuthorService) invalidateListCache(ctx context.Context) {
	s.cache.DeletePattern(ctx, authorListKeyPrefix+"*")
}

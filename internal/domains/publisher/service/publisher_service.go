package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/publisher"
	"library-catalog-backend/internal/shared/utils"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/logger"
)

// PublisherService implements publisher.Service. List pages are cached
// per page; writes drop every cached page.
type PublisherService struct {
	repo  publisher.Repository
	cache cache.Cache
}

func NewService(repo publisher.Repository, cache cache.Cache) publisher.Service {
	return &PublisherService{repo: repo, cache: cache}
}

const (
	publisherListKeyPrefix = "publishers:list:"
	publisherListCacheTTL  = 15 * time.Minute
)

func (s *PublisherService) Create(ctx context.Context, req *publisher.PublisherInput) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, publisher.ErrDuplicateName
	}

	created, err := s.repo.Create(ctx, &publisher.Publisher{
		Name:                  req.Name,
		CorrespondenceAddress: req.CorrespondenceAddress,
		Phone:                 req.Phone,
		Email:                 req.Email,
		MaxBooksRegistered:    *req.MaxBooksRegistered,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	logger.Info("Publisher created", map[string]interface{}{
		"id":   created.ID,
		"name": created.Name,
	})

	return created, nil
}

func (s *PublisherService) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PublisherService) List(ctx context.Context, page int) (*publisher.PublisherListResponse, error) {
	page = utils.NormalizePage(page)
	cacheKey := fmt.Sprintf("%s%d", publisherListKeyPrefix, page)

	var cached publisher.PublisherListResponse
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	publishers, total, err := s.repo.List(ctx, utils.PageSize, utils.PageOffset(page))
	if err != nil {
		return nil, err
	}

	if publishers == nil {
		publishers = []publisher.Publisher{}
	}

	resp := &publisher.PublisherListResponse{
		Publishers:  publishers,
		CurrentPage: page,
		TotalPages:  utils.TotalPages(total),
	}

	s.cache.Set(ctx, cacheKey, resp, publisherListCacheTTL)

	return resp, nil
}

func (s *PublisherService) SearchByName(ctx context.Context, name string) (*publisher.Publisher, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *PublisherService) Update(ctx context.Context, id uuid.UUID, req *publisher.PublisherInput) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &publisher.Publisher{
		ID:                    id,
		Name:                  req.Name,
		CorrespondenceAddress: req.CorrespondenceAddress,
		Phone:                 req.Phone,
		Email:                 req.Email,
		MaxBooksRegistered:    *req.MaxBooksRegistered,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return updated, nil
}

func (s *PublisherService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *PublisherService) invalidateListCache(ctx context.Context) {
	s.cache.DeletePattern(ctx, publisherListKeyPrefix+"*")
}

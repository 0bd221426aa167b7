package service

import (
	"context"
	"time"

	"showcase/internal/cache"
	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/logger"

	"go.uber.org/zap"
)

var categoriesCacheKey = cache.GenerateCacheKey("trivia", "categories", "all")

// CategoryService serves trivia categories through a read-through cache
type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	// Exists checks storage directly, bypassing the cache
	Exists(ctx context.Context, id int64) (bool, error)
	SaveCategory(ctx context.Context, category *domain.Category) error
}

type categoryService struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewCategoryService creates a category service. cache may be nil.
func NewCategoryService(repo domain.CategoryRepository, cache domain.Cache, ttl time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: cache, ttl: ttl}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := cache.GetOrLoad(ctx, s.cache, categoriesCacheKey, s.ttl, s.repo.ListCategories)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list categories", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoriesResponse{
		Categories: dto.CategoryMap(categories),
		Count:      len(categories),
	}, nil
}

func (s *categoryService) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.repo.CategoryExists(ctx, id)
	if err != nil {
		return false, domain.NewInternalError("Failed to check category", err)
	}
	return exists, nil
}

// SaveCategory stores the category and drops the cached list
func (s *categoryService) SaveCategory(ctx context.Context, category *domain.Category) error {
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
			logger.Get().Warn("Failed to invalidate category cache", zap.Error(err))
		}
	}
	return nil
}

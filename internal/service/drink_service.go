package service

import (
	"context"
	"errors"

	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/logger"

	"go.uber.org/zap"
)

// DrinkService defines the coffee shop menu operations
type DrinkService interface {
	ListDrinks(ctx context.Context) (*dto.DrinksShortResponse, error)
	ListDrinkDetails(ctx context.Context) (*dto.DrinksLongResponse, error)
	CreateDrink(ctx context.Context, req *dto.DrinkRequest) (*dto.DrinksLongResponse, error)
	UpdateDrink(ctx context.Context, id string, req *dto.DrinkPatchRequest) (*dto.DrinksLongResponse, error)
	DeleteDrink(ctx context.Context, id string) (*dto.DeleteDrinkResponse, error)
}

type drinkService struct {
	repo      domain.DrinkRepository
	publisher domain.EventPublisher
}

// NewDrinkService creates a new drink service
func NewDrinkService(repo domain.DrinkRepository, publisher domain.EventPublisher) DrinkService {
	return &drinkService{repo: repo, publisher: publisher}
}

func (s *drinkService) ListDrinks(ctx context.Context) (*dto.DrinksShortResponse, error) {
	drinks, err := s.repo.ListDrinks(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list drinks", err)
	}
	resp := &dto.DrinksShortResponse{Success: true, Drinks: make([]dto.DrinkShort, len(drinks))}
	for i, d := range drinks {
		resp.Drinks[i] = dto.ToDrinkShort(d)
	}
	return resp, nil
}

func (s *drinkService) ListDrinkDetails(ctx context.Context) (*dto.DrinksLongResponse, error) {
	drinks, err := s.repo.ListDrinks(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list drinks", err)
	}
	resp := &dto.DrinksLongResponse{Success: true, Drinks: make([]dto.DrinkLong, len(drinks))}
	for i, d := range drinks {
		resp.Drinks[i] = dto.ToDrinkLong(d)
	}
	return resp, nil
}

func (s *drinkService) CreateDrink(ctx context.Context, req *dto.DrinkRequest) (*dto.DrinksLongResponse, error) {
	drink := req.Drink()
	if err := drink.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateDrink(ctx, &drink); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, duplicateTitleError(drink.Title)
		}
		return nil, domain.NewInternalError("Failed to create drink", err)
	}

	logger.Get().Info("Drink created", zap.String("drink_id", drink.ID), zap.String("title", drink.Title))
	publishEvent(ctx, s.publisher, domain.EventDrinkCreated, dto.ToDrinkLong(drink))
	return &dto.DrinksLongResponse{Success: true, Drinks: []dto.DrinkLong{dto.ToDrinkLong(drink)}}, nil
}

func (s *drinkService) UpdateDrink(ctx context.Context, id string, req *dto.DrinkPatchRequest) (*dto.DrinksLongResponse, error) {
	patch := req.Patch()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	drink, err := s.repo.UpdateDrink(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) && patch.Title != nil {
			return nil, duplicateTitleError(*patch.Title)
		}
		return nil, domain.NewInternalError("Failed to update drink", err)
	}
	if drink == nil {
		return nil, drinkNotFoundError(id)
	}

	publishEvent(ctx, s.publisher, domain.EventDrinkUpdated, dto.ToDrinkLong(*drink))
	return &dto.DrinksLongResponse{Success: true, Drinks: []dto.DrinkLong{dto.ToDrinkLong(*drink)}}, nil
}

func (s *drinkService) DeleteDrink(ctx context.Context, id string) (*dto.DeleteDrinkResponse, error) {
	deleted, err := s.repo.DeleteDrink(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to delete drink", err)
	}
	if !deleted {
		return nil, drinkNotFoundError(id)
	}

	logger.Get().Info("Drink deleted", zap.String("drink_id", id))
	publishEvent(ctx, s.publisher, domain.EventDrinkDeleted, map[string]string{"id": id})
	return &dto.DeleteDrinkResponse{Success: true, Delete: id}, nil
}

func drinkNotFoundError(id string) *domain.DomainError {
	return domain.NewNotFoundError("drink does not exist").WithContext("drink_id", id)
}

func duplicateTitleError(title string) *domain.DomainError {
	return domain.NewConflictError("a drink with this title already exists").WithContext("title", title)
}

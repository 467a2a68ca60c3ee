package collection

import (
	"context"

	"foodgram-backend/domain"
	"foodgram-backend/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
)

type (
	CollectionService interface {
		// Toggle adds a recipe to or removes it from one of the user's collections.
		// Adding returns the short recipe view; removing returns nil.
		Toggle(ctx context.Context, kind domain.CollectionKind, userID, recipeID uint, action domain.CollectionAction) (*domain.ShortRecipeResponse, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *collectionService) Toggle(ctx context.Context, kind domain.CollectionKind, userID, recipeID uint, action domain.CollectionAction) (*domain.ShortRecipeResponse, error) {
	if action != domain.ActionAdd && action != domain.ActionRemove {
		return nil, domain.ErrUnknownAction
	}

	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	collectionID, err := s.collectionRepository.GetOrCreateCollection(ctx, kind, userID)
	if err != nil {
		return nil, err
	}

	if action == domain.ActionRemove {
		if err := s.collectionRepository.RemoveRecipe(ctx, kind, collectionID, r.ID); err != nil {
			return nil, err
		}
		log.Infow("recipe removed from collection", "kind", kind, "user_id", userID, "recipe_id", r.ID)
		return nil, nil
	}

	exists, err := s.collectionRepository.HasRecipe(ctx, kind, collectionID, r.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyInCollection
	}
	if err := s.collectionRepository.AddRecipe(ctx, kind, collectionID, r.ID); err != nil {
		return nil, err
	}

	log.Infow("recipe added to collection", "kind", kind, "user_id", userID, "recipe_id", r.ID)
	short := recipe.ToShortRecipeResponse(r)
	return &short, nil
}

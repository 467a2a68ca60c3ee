package recipe

import (
	"context"
	"errors"
	"strings"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/utils/storage"
	"foodgram-backend/pkg/ingredient"
	"foodgram-backend/pkg/tag"
	"foodgram-backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const imageFolder = "recipe_images"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, pagination domain.PaginationRequest) (domain.PaginatedResponse[domain.RecipeResponse], error)
		GetRecipeByID(ctx context.Context, id uint, viewerID uint) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, authorID uint) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest, userID uint, isStaff bool) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint, userID uint, isStaff bool) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		userRepository       user.UserRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		userRepository:       userRepository,
		s3:                   s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, pagination domain.PaginationRequest) (domain.PaginatedResponse[domain.RecipeResponse], error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, pagination)
	if err != nil {
		return domain.PaginatedResponse[domain.RecipeResponse]{}, err
	}

	results, err := s.toResponses(ctx, recipes, filter.ViewerID)
	if err != nil {
		return domain.PaginatedResponse[domain.RecipeResponse]{}, err
	}
	return domain.NewPaginatedResponse(results, pagination, count), nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint, viewerID uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	results, err := s.toResponses(ctx, []*entities.Recipe{recipe}, viewerID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return results[0], nil
}

func (s *recipeService) toResponses(ctx context.Context, recipes []*entities.Recipe, viewerID uint) ([]domain.RecipeResponse, error) {
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, inCart, err := s.recipeRepository.GetViewerFlags(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.userRepository.SubscribedAuthorIDs(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	results := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		results = append(results, ToRecipeResponse(r, ViewerFlags{
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			IsSubscribed:     subscribed[r.AuthorID],
		}))
	}
	return results, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, authorID uint) (domain.RecipeResponse, error) {
	if err := ValidateRecipeRequest(req); err != nil {
		return domain.RecipeResponse{}, err
	}
	if strings.TrimSpace(req.Image) == "" {
		return domain.RecipeResponse{}, domain.ErrMissingImage
	}
	img, err := storage.DecodeBase64Image(req.Image, storage.AllowImage...)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrInvalidImage
	}

	tags, amounts, err := s.resolveLinks(ctx, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.recipeRepository.CheckNameExists(ctx, authorID, name, 0)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if exists {
		return domain.RecipeResponse{}, domain.ErrDuplicateRecipeName
	}

	objectKey, err := s.uploadImage(img)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		Name:              name,
		AuthorID:          authorID,
		Image:             s.s3.GetPublicLinkKey(objectKey),
		Text:              req.Text,
		CookingTime:       req.CookingTime,
		Tags:              tags,
		AmountIngredients: amounts,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		s.discardImage(objectKey)
		return domain.RecipeResponse{}, err
	}

	log.Infow("recipe created", "recipe_id", recipe.ID, "author_id", authorID, "ingredients", len(amounts))
	return s.GetRecipeByID(ctx, recipe.ID, authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest, userID uint, isStaff bool) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if recipe.AuthorID != userID && !isStaff {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	if err := ValidateRecipeRequest(req); err != nil {
		return domain.RecipeResponse{}, err
	}
	var img *storage.Image
	if strings.TrimSpace(req.Image) != "" {
		decoded, err := storage.DecodeBase64Image(req.Image, storage.AllowImage...)
		if err != nil {
			return domain.RecipeResponse{}, domain.ErrInvalidImage
		}
		img = &decoded
	}

	tags, amounts, err := s.resolveLinks(ctx, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.recipeRepository.CheckNameExists(ctx, recipe.AuthorID, name, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if exists {
		return domain.RecipeResponse{}, domain.ErrDuplicateRecipeName
	}

	oldImage := recipe.Image
	newKey := ""
	if img != nil {
		newKey, err = s.uploadImage(*img)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Image = s.s3.GetPublicLinkKey(newKey)
	}

	recipe.Name = name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, amounts); err != nil {
		if newKey != "" {
			s.discardImage(newKey)
		}
		return domain.RecipeResponse{}, err
	}
	if newKey != "" {
		s.discardImage(s.s3.GetObjectKeyFromLink(oldImage))
	}

	log.Infow("recipe updated", "recipe_id", recipe.ID, "user_id", userID)
	return s.GetRecipeByID(ctx, recipe.ID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID uint, isStaff bool) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID && !isStaff {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID); err != nil {
		return err
	}
	s.discardImage(s.s3.GetObjectKeyFromLink(recipe.Image))

	log.Infow("recipe deleted", "recipe_id", recipe.ID, "user_id", userID)
	return nil
}

// resolveLinks loads the referenced tags and ingredients and builds one amount row per entry,
// in request order.
func (s *recipeService) resolveLinks(ctx context.Context, req domain.RecipeRequest) ([]*entities.Tag, []*entities.AmountIngredient, error) {
	tags, err := s.tagRepository.GetTagsByIDs(ctx, req.Tags)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(req.Tags) {
		return nil, nil, domain.ErrTagNotFound
	}

	ids := make([]uint, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ids = append(ids, item.ID)
	}
	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, nil, domain.ErrIngredientNotFound
	}

	amounts := make([]*entities.AmountIngredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		amounts = append(amounts, &entities.AmountIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return tags, amounts, nil
}

func (s *recipeService) uploadImage(img storage.Image) (string, error) {
	objectKey, err := s.s3.UploadFile(uuid.NewString()+img.Extension, img.Data, img.ContentType, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrContentTypeNotAllowed) {
			return "", domain.ErrInvalidImage
		}
		return "", err
	}
	return objectKey, nil
}

func (s *recipeService) discardImage(objectKey string) {
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(objectKey); err != nil {
		log.Warnw("failed to delete recipe image", "object_key", objectKey, "error", err)
	}
}

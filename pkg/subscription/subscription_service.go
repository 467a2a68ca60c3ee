package subscription

import (
	"context"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/pkg/recipe"
	"foodgram-backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
)

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, followerID, authorID uint, recipesLimit int) (domain.AuthorSummaryResponse, error)
		Unsubscribe(ctx context.Context, followerID, authorID uint) error
		GetSubscriptions(ctx context.Context, followerID uint, pagination domain.PaginationRequest, recipesLimit int) (domain.PaginatedResponse[domain.AuthorSummaryResponse], error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		recipeRepository       recipe.RecipeRepository
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	userRepository user.UserRepository,
	recipeRepository recipe.RecipeRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		recipeRepository:       recipeRepository,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, followerID, authorID uint, recipesLimit int) (domain.AuthorSummaryResponse, error) {
	if followerID == authorID {
		return domain.AuthorSummaryResponse{}, domain.ErrSelfSubscription
	}

	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		return domain.AuthorSummaryResponse{}, err
	}

	exists, err := s.subscriptionRepository.CheckSubscriptionExists(ctx, followerID, authorID)
	if err != nil {
		return domain.AuthorSummaryResponse{}, err
	}
	if exists {
		return domain.AuthorSummaryResponse{}, domain.ErrAlreadySubscribed
	}

	if err := s.subscriptionRepository.CreateSubscription(ctx, &entities.Subscription{
		UserID:   followerID,
		AuthorID: authorID,
	}); err != nil {
		return domain.AuthorSummaryResponse{}, err
	}

	log.Infow("subscribed", "user_id", followerID, "author_id", authorID)
	return s.summary(ctx, author, recipesLimit)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, followerID, authorID uint) error {
	if followerID == authorID {
		return domain.ErrSelfSubscription
	}

	if _, err := s.userRepository.GetUserByID(ctx, authorID); err != nil {
		return err
	}

	if err := s.subscriptionRepository.DeleteSubscription(ctx, followerID, authorID); err != nil {
		return err
	}

	log.Infow("unsubscribed", "user_id", followerID, "author_id", authorID)
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, followerID uint, pagination domain.PaginationRequest, recipesLimit int) (domain.PaginatedResponse[domain.AuthorSummaryResponse], error) {
	authors, count, err := s.subscriptionRepository.GetSubscribedAuthors(ctx, followerID, pagination)
	if err != nil {
		return domain.PaginatedResponse[domain.AuthorSummaryResponse]{}, err
	}

	results := make([]domain.AuthorSummaryResponse, 0, len(authors))
	for _, author := range authors {
		summary, err := s.summary(ctx, author, recipesLimit)
		if err != nil {
			return domain.PaginatedResponse[domain.AuthorSummaryResponse]{}, err
		}
		results = append(results, summary)
	}
	return domain.NewPaginatedResponse(results, pagination, count), nil
}

// summary builds the followed-author view. The viewer is always subscribed here.
func (s *subscriptionService) summary(ctx context.Context, author *entities.User, recipesLimit int) (domain.AuthorSummaryResponse, error) {
	if recipesLimit < 1 {
		recipesLimit = domain.DefaultRecipesLimit
	}

	recipes, count, err := s.recipeRepository.GetAuthorRecipes(ctx, author.ID, recipesLimit)
	if err != nil {
		return domain.AuthorSummaryResponse{}, err
	}

	return domain.AuthorSummaryResponse{
		UserResponse: user.ToUserResponse(author, true),
		Recipes:      recipe.ToShortRecipeResponses(recipes),
		RecipesCount: count,
	}, nil
}

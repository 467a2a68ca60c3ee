package shoppinglist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/utils/mailing"
	"foodgram-backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
)

const mailSubject = "Your Foodgram shopping list"

type (
	ShoppingListService interface {
		BuildShoppingList(ctx context.Context, userID uint) (domain.ShoppingListFile, error)
		SendShoppingList(ctx context.Context, userID uint) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		userRepository         user.UserRepository
		mailer                 mailing.Mailer
		now                    func() time.Time
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, userRepository user.UserRepository, mailer mailing.Mailer) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		userRepository:         userRepository,
		mailer:                 mailer,
		now:                    time.Now,
	}
}

// Render formats the aggregated list as the downloadable text file.
func Render(u *entities.User, items []domain.ShoppingListItem, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for:\n\n%s (%s %s)\n\n%s\n\n",
		u.Username, u.FirstName, u.LastName, generatedAt.Format(domain.ShoppingListDateFormat))
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %d %s\n", item.Name, item.Amount, item.MeasurementUnit)
	}
	b.WriteString("\n\nCounted in Foodgram")
	return b.String()
}

func FileName(u *entities.User) string {
	return u.Username + "_shopping_list.txt"
}

func (s *shoppingListService) BuildShoppingList(ctx context.Context, userID uint) (domain.ShoppingListFile, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ShoppingListFile{}, err
	}

	count, err := s.shoppingListRepository.CountCartRecipes(ctx, userID)
	if err != nil {
		return domain.ShoppingListFile{}, err
	}
	if count == 0 {
		return domain.ShoppingListFile{}, domain.ErrEmptyCart
	}

	items, err := s.shoppingListRepository.GetCartItems(ctx, userID)
	if err != nil {
		return domain.ShoppingListFile{}, err
	}

	log.Infow("shopping list built", "user_id", userID, "recipes", count, "items", len(items))
	return domain.ShoppingListFile{
		FileName: FileName(u),
		Content:  []byte(Render(u, items, s.now())),
	}, nil
}

func (s *shoppingListService) SendShoppingList(ctx context.Context, userID uint) error {
	file, err := s.BuildShoppingList(ctx, userID)
	if err != nil {
		return err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Hi %s,\n\nyour shopping list is attached.\n", u.FirstName)
	if err := s.mailer.SendMail(u.Email, mailSubject, body, mailing.Attachment{
		Name:    file.FileName,
		Content: file.Content,
	}); err != nil {
		return fmt.Errorf("send shopping list: %w", err)
	}

	log.Infow("shopping list sent", "user_id", userID, "email", u.Email)
	return nil
}

package handlers

import (
	"fmt"
	"strings"

	"foodgram-backend/domain"
	"foodgram-backend/internal/api/presenters"
	"foodgram-backend/internal/middleware"
	"foodgram-backend/pkg/collection"
	"foodgram-backend/pkg/shoppinglist"

	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
		DownloadShoppingCart(c *fiber.Ctx) error
		SendShoppingCart(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService   collection.CollectionService
		shoppingListService shoppinglist.ShoppingListService
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, shoppingListService shoppinglist.ShoppingListService) CollectionHandler {
	return &collectionHandler{
		collectionService:   collectionService,
		shoppingListService: shoppingListService,
	}
}

func (h *collectionHandler) AddFavorite(c *fiber.Ctx) error {
	return h.toggle(c, domain.CollectionFavorite, domain.ActionAdd, domain.MessageSuccessAddFavorite, domain.MessageFailedAddFavorite)
}

func (h *collectionHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.toggle(c, domain.CollectionFavorite, domain.ActionRemove, domain.MessageSuccessRemoveFavorite, domain.MessageFailedRemoveFavorite)
}

func (h *collectionHandler) AddToShoppingCart(c *fiber.Ctx) error {
	return h.toggle(c, domain.CollectionShoppingCart, domain.ActionAdd, domain.MessageSuccessAddCart, domain.MessageFailedAddCart)
}

func (h *collectionHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return h.toggle(c, domain.CollectionShoppingCart, domain.ActionRemove, domain.MessageSuccessRemoveCart, domain.MessageFailedRemoveCart)
}

func (h *collectionHandler) toggle(c *fiber.Ctx, kind domain.CollectionKind, action domain.CollectionAction, success, failed string) error {
	recipeID, err := parseID(c, "id")
	if err != nil {
		return presenters.Fail(c, failed, err)
	}

	res, err := h.collectionService.Toggle(c.Context(), kind, middleware.UserID(c), recipeID, action)
	if err != nil {
		return presenters.Fail(c, failed, err)
	}

	if action == domain.ActionRemove {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, success)
}

func (h *collectionHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	file, err := h.shoppingListService.BuildShoppingList(c.Context(), middleware.UserID(c))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedDownloadShoppingList, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, attachmentDisposition(file.FileName))
	return c.Status(fiber.StatusOK).Send(file.Content)
}

func (h *collectionHandler) SendShoppingCart(c *fiber.Ctx) error {
	if err := h.shoppingListService.SendShoppingList(c.Context(), middleware.UserID(c)); err != nil {
		return presenters.Fail(c, domain.MessageFailedSendShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendShoppingList)
}

// attachmentDisposition quotes an ASCII fallback name and carries the real UTF-8 name
// in the extended filename* parameter (RFC 6266, RFC 5987).
func attachmentDisposition(fileName string) string {
	var fallback strings.Builder
	for _, r := range fileName {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			fallback.WriteByte('_')
			continue
		}
		fallback.WriteRune(r)
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback.String(), encodeExtValue(fileName))
}

func encodeExtValue(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	default:
		return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
	}
}

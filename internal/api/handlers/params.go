package handlers

import (
	"strconv"

	"foodgram-backend/domain"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

func pagination(c *fiber.Ctx) domain.PaginationRequest {
	return domain.NewPaginationRequest(c.Query("page"), c.Query("limit"))
}

// recipeFilter reads the list filters. The favorite and cart flags only apply to authenticated viewers.
func recipeFilter(c *fiber.Ctx, viewerID uint) domain.RecipeFilter {
	filter := domain.RecipeFilter{ViewerID: viewerID}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		if len(slug) > 0 {
			filter.Tags = append(filter.Tags, string(slug))
		}
	}
	if author, err := strconv.ParseUint(c.Query("author"), 10, 64); err == nil {
		filter.AuthorID = uint(author)
	}
	if viewerID != 0 {
		filter.IsFavorited = domain.ParseFlag(c.Query("is_favorited"))
		filter.IsInShoppingCart = domain.ParseFlag(c.Query("is_in_shopping_cart"))
	}
	return filter
}

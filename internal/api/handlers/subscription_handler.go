package handlers

import (
	"foodgram-backend/domain"
	"foodgram-backend/internal/api/presenters"
	"foodgram-backend/internal/middleware"
	"foodgram-backend/pkg/subscription"

	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{subscriptionService: subscriptionService}
}

func (h *subscriptionHandler) Subscribe(c *fiber.Ctx) error {
	authorID, err := parseID(c, "id")
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSubscribe, err)
	}

	limit := domain.ParseRecipesLimit(c.Query("recipes_limit"))
	res, err := h.subscriptionService.Subscribe(c.Context(), middleware.UserID(c), authorID, limit)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *subscriptionHandler) Unsubscribe(c *fiber.Ctx) error {
	authorID, err := parseID(c, "id")
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUnsubscribe, err)
	}

	if err := h.subscriptionService.Unsubscribe(c.Context(), middleware.UserID(c), authorID); err != nil {
		return presenters.Fail(c, domain.MessageFailedUnsubscribe, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *subscriptionHandler) GetSubscriptions(c *fiber.Ctx) error {
	limit := domain.ParseRecipesLimit(c.Query("recipes_limit"))
	res, err := h.subscriptionService.GetSubscriptions(c.Context(), middleware.UserID(c), pagination(c), limit)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetSubscriptions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscriptions)
}

package domain

var (
	MessageSuccessSubscribe        = "subscribed successfully"
	MessageSuccessUnsubscribe      = "unsubscribed successfully"
	MessageSuccessGetSubscriptions = "success get subscriptions"

	MessageFailedSubscribe        = "failed to subscribe"
	MessageFailedUnsubscribe      = "failed to unsubscribe"
	MessageFailedGetSubscriptions = "failed to get subscriptions"

	ErrSelfSubscription  = NewValidationError("author", "you cannot subscribe to yourself")
	ErrAlreadySubscribed = NewConflictError("author", "you are already subscribed to this author")
	ErrNotSubscribed     = NewValidationError("author", "you are not subscribed to this author")
)

type (
	AuthorSummaryResponse struct {
		UserResponse
		Recipes      []ShortRecipeResponse `json:"recipes"`
		RecipesCount int64                 `json:"recipes_count"`
	}
)

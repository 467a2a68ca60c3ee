package user

import (
	"foodgram-backend/domain"
	"foodgram-backend/entities"
)

func ToUserResponse(u *entities.User, isSubscribed bool) domain.UserResponse {
	if u == nil {
		return domain.UserResponse{}
	}
	return domain.UserResponse{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

package domain

const (
	MinUsernameLength  = 3
	MaxUserFieldLength = 150
	MaxEmailLength     = 254
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessLogout      = "logout successful"
	MessageSuccessGetUser     = "success get user"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessSetPassword = "password changed successfully"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetUser     = "failed to get user"
	MessageFailedGetUsers    = "failed to get users"
	MessageFailedSetPassword = "failed to change password"

	ErrUserNotFound       = NewNotFoundError("user not found")
	ErrEmailTaken         = NewConflictError("email", "a user with this email already exists")
	ErrUsernameTaken      = NewConflictError("username", "a user with this username already exists")
	ErrUserAlreadyExists  = NewConflictError("", "a user with these credentials already exists")
	ErrInvalidUsername    = NewValidationError("username", "username must be 3 to 150 letters")
	ErrInvalidCredentials = newError(KindUnauthorized, "", "invalid email or password")
	ErrWrongPassword      = NewValidationError("current_password", "current password is wrong")
	ErrHashPassword       = newError(KindInternal, "", "failed to hash password")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,username"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AuthToken string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
	}

	UserResponse struct {
		Email        string `json:"email"`
		ID           uint   `json:"id"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}
)

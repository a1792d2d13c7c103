package models

import userModels "github.com/joblyhq/jobly/users/models"

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Username string `json:"username" validate:"required,min=1,max=25"`
	Password string `json:"password" validate:"required,min=1,max=20"`
}

// RegisterRequest is the body of POST /auth/register. There is no isAdmin
// field; self-registered users are never admins.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,min=6,max=60,email"`
}

// CreateUserRequest converts the registration into a non-admin user.
func (r RegisterRequest) CreateUserRequest() userModels.CreateUserRequest {
	return userModels.CreateUserRequest{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		IsAdmin:   false,
	}
}

// TokenResponse carries a signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}

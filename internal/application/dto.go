package application

import "time"

type RegisterUserCommand struct {
	Email    string
	Password string
	Name     string
}

type RegisterUserResult struct {
	ID    string
	Email string
}

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	ID                    string
	Email                 string
	Role                  string
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

type UserProfileResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

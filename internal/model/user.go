package model

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

type User struct {
	ID       int
	Username string
	Password string
	Chips    int
	Role     string
	Banned   bool
}

type UserClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

package auth

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Chips    int    `json:"chips"`
	Role     string `json:"role"`
	Banned   bool   `json:"banned"`
}

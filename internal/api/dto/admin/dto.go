package admin

type BanRequest struct {
	Username string `json:"username"`
}

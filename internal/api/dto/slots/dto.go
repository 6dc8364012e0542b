package slots

type PlayRequest struct {
	Bet int `json:"bet"` // positive stake in chips
}

type ReelResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type MatchResponse struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol,omitempty"`
	Count  int    `json:"count"`
}

type PlayResponse struct {
	Reels       []ReelResponse `json:"reels"`
	MatchResult MatchResponse  `json:"matchResult"`
	BetAmount   int            `json:"betAmount"`
	Payout      int            `json:"payout"`
	NetResult   int            `json:"netResult"`
	Message     string         `json:"message"`
	IsWin       bool           `json:"isWin"`
	Balance     int            `json:"balance"`
	PityGranted bool           `json:"pityGranted,omitempty"`
}

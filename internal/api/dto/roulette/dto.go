package roulette

type BetRequest struct {
	Type   string `json:"type"`
	Value  int    `json:"value,omitempty"` // only for "number" bets
	Amount int    `json:"amount"`
}

type PlayRequest struct {
	Bets []BetRequest `json:"bets"`
}

type SpinResponse struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	IsEven bool   `json:"isEven"`
	IsOdd  bool   `json:"isOdd"`
}

type BetResultResponse struct {
	BetType   string `json:"betType"`
	BetValue  int    `json:"betValue"`
	BetAmount int    `json:"betAmount"`
	Won       bool   `json:"won"`
	Payout    int    `json:"payout"`
}

type PlayResponse struct {
	SpinResult    SpinResponse        `json:"spinResult"`
	BetResults    []BetResultResponse `json:"betResults"`
	TotalBet      int                 `json:"totalBet"`
	TotalWinnings int                 `json:"totalWinnings"`
	NetResult     int                 `json:"netResult"`
	Message       string              `json:"message"`
	Balance       int                 `json:"balance"`
	PityGranted   bool                `json:"pityGranted,omitempty"`
}

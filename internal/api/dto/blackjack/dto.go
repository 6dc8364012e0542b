package blackjack

type StartRequest struct {
	Bet int `json:"bet"` // positive stake in chips
}

// Card is one visible card. A face-down dealer card is sent with
// Hidden set and empty suit/rank.
type Card struct {
	Suit   string `json:"suit,omitempty"`
	Rank   string `json:"rank,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

type StateResponse struct {
	PlayerHand  []Card `json:"playerHand"`
	DealerHand  []Card `json:"dealerHand"`
	PlayerValue int    `json:"playerValue"`
	DealerValue int    `json:"dealerValue"`
	Active      bool   `json:"active"`
}

type StartResponse struct {
	StateResponse
	Bet     int `json:"bet"`
	Balance int `json:"balance"`
}

type HitResponse struct {
	PlayerHand  []Card `json:"playerHand"`
	PlayerValue int    `json:"playerValue"`
	Active      bool   `json:"active"`
	Bust        bool   `json:"bust"`
	Result      string `json:"result,omitempty"`
	Message     string `json:"message,omitempty"`
	Balance     int    `json:"balance"`
	PityGranted bool   `json:"pityGranted,omitempty"`
}

type StandResponse struct {
	PlayerHand  []Card `json:"playerHand"`
	DealerHand  []Card `json:"dealerHand"`
	PlayerValue int    `json:"playerValue"`
	DealerValue int    `json:"dealerValue"`
	Result      string `json:"result"`
	Message     string `json:"message"`
	Payout      int    `json:"payout"`
	NetResult   int    `json:"netResult"`
	Balance     int    `json:"balance"`
	PityGranted bool   `json:"pityGranted,omitempty"`
}

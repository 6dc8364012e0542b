package model

const (
	GameBlackjack = "blackjack"
	GameRoulette  = "roulette"
	GameSlots     = "slots"
)

// Games lists every game with persisted win/loss counters.
var Games = []string{GameBlackjack, GameRoulette, GameSlots}

// GameStats are a player's win/loss counters for one game.
type GameStats struct {
	Wins   int
	Losses int
}

// LeaderboardEntry is one ranked row. Chips is only populated for the
// overall players leaderboard.
type LeaderboardEntry struct {
	Username string
	Chips    int
	Wins     int
	Losses   int
}

// Settlement is the outcome of applying a round's net delta to a player's
// balance.
type Settlement struct {
	Balance     int
	PityGranted bool
}

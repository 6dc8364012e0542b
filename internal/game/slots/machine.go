package slots

import (
	"errors"
	"fmt"

	"goldchip_backend/internal/game/rng"
)

const (
	MatchThree = "threeMatch"
	MatchTwo   = "twoMatch"
	MatchNone  = "noMatch"
)

const reelCount = 3

var ErrInvalidBet = errors.New("bet amount must be positive")

// Game is a three-reel slot machine. Stateless per call: reels draw
// independently with replacement, so there is no deck to exhaust.
type Game struct {
	symbols []Symbol
	payouts Paytable
	pool    []Symbol
	src     rng.Source
}

// NewGame builds a machine with the default symbol set and paytable.
func NewGame(src rng.Source) *Game {
	return NewGameWithConfig(src, DefaultSymbols(), DefaultPaytable())
}

// NewGameWithConfig builds a machine from a configured symbol set and
// paytable.
func NewGameWithConfig(src rng.Source, symbols []Symbol, payouts Paytable) *Game {
	return &Game{
		symbols: symbols,
		payouts: payouts,
		pool:    buildPool(symbols),
		src:     src,
	}
}

// MatchResult classifies the reels of one spin.
type MatchResult struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol,omitempty"`
	Count  int    `json:"count"`
}

// ReelSymbol is the visible part of a drawn symbol.
type ReelSymbol struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PlayResult is the outcome of one slot round.
type PlayResult struct {
	Reels       []ReelSymbol `json:"reels"`
	MatchResult MatchResult  `json:"matchResult"`
	BetAmount   int          `json:"betAmount"`
	Payout      int          `json:"payout"`
	NetResult   int          `json:"netResult"`
	Message     string       `json:"message"`
	IsWin       bool         `json:"isWin"`
}

// Spin draws one symbol per reel from the weighted pool.
func (g *Game) Spin() ([]Symbol, error) {
	reels := make([]Symbol, reelCount)
	for i := range reels {
		idx, err := g.src.Intn(0, len(g.pool))
		if err != nil {
			return nil, err
		}
		reels[i] = g.pool[idx]
	}
	return reels, nil
}

// CheckWin classifies a set of reels: three equal beats two equal beats
// nothing.
func CheckWin(reels []Symbol) MatchResult {
	a, b, c := reels[0].Name, reels[1].Name, reels[2].Name

	if a == b && b == c {
		return MatchResult{Type: MatchThree, Symbol: a, Count: 3}
	}

	switch {
	case a == b:
		return MatchResult{Type: MatchTwo, Symbol: a, Count: 2}
	case b == c:
		return MatchResult{Type: MatchTwo, Symbol: b, Count: 2}
	case a == c:
		return MatchResult{Type: MatchTwo, Symbol: a, Count: 2}
	}

	return MatchResult{Type: MatchNone}
}

// payout computes the chip payout for a match at the given bet.
func (g *Game) payout(match MatchResult, bet int) int {
	switch match.Type {
	case MatchThree:
		return bet * g.payouts.ThreeMatch[match.Symbol]
	case MatchTwo:
		return bet * g.payouts.TwoMatch[match.Symbol]
	default:
		return 0
	}
}

// Play runs one full round: spin, classify, pay.
func (g *Game) Play(bet int) (*PlayResult, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

	reels, err := g.Spin()
	if err != nil {
		return nil, err
	}

	match := CheckWin(reels)
	payout := g.payout(match, bet)
	netResult := payout - bet

	var message string
	switch match.Type {
	case MatchThree:
		message = fmt.Sprintf("🎉 JACKPOT! Three %ss! You won %d chips!", match.Symbol, payout)
	case MatchTwo:
		message = fmt.Sprintf("🎊 Two %ss! You won %d chips!", match.Symbol, payout)
	default:
		message = fmt.Sprintf("😔 No match. You lost %d chips.", bet)
	}

	visible := make([]ReelSymbol, len(reels))
	for i, r := range reels {
		visible[i] = ReelSymbol{Name: r.Name, Icon: r.Icon}
	}

	return &PlayResult{
		Reels:       visible,
		MatchResult: match,
		BetAmount:   bet,
		Payout:      payout,
		NetResult:   netResult,
		Message:     message,
		IsWin:       payout > 0,
	}, nil
}

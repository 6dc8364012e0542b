package roulette

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidBetFormat = errors.New("invalid bet format")
	ErrInvalidBetType   = errors.New("invalid bet type")
	ErrInvalidBetAmount = errors.New("bet amount must be positive")
	ErrInvalidBetValue  = errors.New("number must be between 0 and 36")
)

// Bet is a single caller-supplied wager. Value is only meaningful for the
// "number" type.
type Bet struct {
	Type   string
	Value  int
	Amount int
}

// Multiplier is winnings per unit stake, excluding the returned stake.
var multipliers = map[string]int{
	"number":  35,
	"red":     1,
	"black":   1,
	"even":    1,
	"odd":     1,
	"low":     1,
	"high":    1,
	"dozen1":  2,
	"dozen2":  2,
	"dozen3":  2,
	"column1": 2,
	"column2": 2,
	"column3": 2,
}

// CheckBet reports whether a bet wins against a spin. Unknown bet types
// simply lose; malformed input never faults a round.
func CheckBet(betType string, betValue int, spin SpinResult) bool {
	switch betType {
	case "number":
		return spin.Number == betValue
	case "red":
		return spin.Color == ColorRed
	case "black":
		return spin.Color == ColorBlack
	case "even":
		return spin.IsEven
	case "odd":
		return spin.IsOdd
	case "low":
		return spin.Number >= 1 && spin.Number <= 18
	case "high":
		return spin.Number >= 19 && spin.Number <= 36
	case "dozen1":
		return spin.Number >= 1 && spin.Number <= 12
	case "dozen2":
		return spin.Number >= 13 && spin.Number <= 24
	case "dozen3":
		return spin.Number >= 25 && spin.Number <= 36
	case "column1":
		return spin.Number > 0 && spin.Number%3 == 1
	case "column2":
		return spin.Number > 0 && spin.Number%3 == 2
	case "column3":
		return spin.Number > 0 && spin.Number%3 == 0
	default:
		return false
	}
}

// ValidateBet checks a single bet before resolution.
func ValidateBet(bet Bet) error {
	if _, ok := multipliers[bet.Type]; !ok {
		return ErrInvalidBetType
	}
	if bet.Amount <= 0 {
		return ErrInvalidBetAmount
	}
	if bet.Type == "number" && (bet.Value < 0 || bet.Value > 36) {
		return ErrInvalidBetValue
	}
	return nil
}

// BetTypeInfo describes one available bet type.
type BetTypeInfo struct {
	Type       string `json:"type"`
	Payout     string `json:"payout"`
	Multiplier int    `json:"multiplier"`
}

// WheelNumbers groups the wheel by color.
type WheelNumbers struct {
	Red   []int `json:"red"`
	Black []int `json:"black"`
	Green []int `json:"green"`
}

// BetTypesInfo is the static bet-type metadata.
type BetTypesInfo struct {
	BetTypes     []BetTypeInfo `json:"betTypes"`
	WheelNumbers WheelNumbers  `json:"wheelNumbers"`
}

// BetTypes returns descriptive metadata about every supported bet. Pure, no
// randomness involved.
func BetTypes() BetTypesInfo {
	types := make([]BetTypeInfo, 0, len(multipliers))
	for betType, mult := range multipliers {
		types = append(types, BetTypeInfo{
			Type:       betType,
			Payout:     fmt.Sprintf("%d:1", mult),
			Multiplier: mult,
		})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Type < types[j].Type })

	var red, black []int
	for n := 1; n <= 36; n++ {
		if Color(n) == ColorRed {
			red = append(red, n)
		} else {
			black = append(black, n)
		}
	}

	return BetTypesInfo{
		BetTypes: types,
		WheelNumbers: WheelNumbers{
			Red:   red,
			Black: black,
			Green: []int{0},
		},
	}
}

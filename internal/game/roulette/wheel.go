package roulette

import "goldchip_backend/internal/game/rng"

const (
	ColorRed   = "red"
	ColorBlack = "black"
	ColorGreen = "green"
)

// European wheel layout. Hard-coded table, not derived from the number.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// SpinResult is one spin of the wheel. Zero is green and neither even nor odd.
type SpinResult struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	IsEven bool   `json:"isEven"`
	IsOdd  bool   `json:"isOdd"`
}

// Game resolves roulette rounds. Stateless per call.
type Game struct {
	src rng.Source
}

func NewGame(src rng.Source) *Game {
	return &Game{src: src}
}

// Color returns the wheel color of a number.
func Color(number int) string {
	if number == 0 {
		return ColorGreen
	}
	if redNumbers[number] {
		return ColorRed
	}
	return ColorBlack
}

// Spin draws one uniform number in [0, 36].
func (g *Game) Spin() (SpinResult, error) {
	number, err := g.src.Intn(0, 37)
	if err != nil {
		return SpinResult{}, err
	}

	return SpinResult{
		Number: number,
		Color:  Color(number),
		IsEven: number != 0 && number%2 == 0,
		IsOdd:  number != 0 && number%2 != 0,
	}, nil
}

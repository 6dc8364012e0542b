package blackjack

// Card is a single playing card. Immutable once drawn.
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

var suits = []string{"hearts", "diamonds", "clubs", "spades"}

var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// rankValue returns the blackjack value of a rank. Aces count as 11 here and
// are demoted to 1 during hand valuation.
func rankValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	case "9":
		return 9
	case "8":
		return 8
	case "7":
		return 7
	case "6":
		return 6
	case "5":
		return 5
	case "4":
		return 4
	case "3":
		return 3
	default:
		return 2
	}
}

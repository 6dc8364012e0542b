package blackjack

// HandValue computes the blackjack value of a hand. Aces start at 11 and are
// demoted by 10 one at a time while the total exceeds 21.
func HandValue(hand []Card) int {
	value := 0
	aces := 0

	for _, card := range hand {
		if card.Rank == "A" {
			aces++
		}
		value += rankValue(card.Rank)
	}

	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}

	return value
}

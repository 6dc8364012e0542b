package blackjack

import "goldchip_backend/internal/game/rng"

type deck struct {
	cards []Card
	src   rng.Source
}

// newDeck builds a shuffled 52-card deck.
func newDeck(src rng.Source) (*deck, error) {
	d := &deck{
		cards: make([]Card, 0, 52),
		src:   src,
	}

	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}

	if err := d.shuffle(); err != nil {
		return nil, err
	}

	return d, nil
}

// shuffle runs an in-place Fisher-Yates pass: every permutation is equally
// likely as long as the underlying source is uniform.
func (d *deck) shuffle() error {
	for i := len(d.cards) - 1; i > 0; i-- {
		j, err := d.src.Intn(0, i+1)
		if err != nil {
			return err
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return nil
}

// draw removes and returns the last card. An exhausted deck is replaced by a
// fresh shuffled one; a single round never gets close to 52 draws.
func (d *deck) draw() (Card, error) {
	if len(d.cards) == 0 {
		fresh, err := newDeck(d.src)
		if err != nil {
			return Card{}, err
		}
		d.cards = fresh.cards
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{
			name: "ace plus king is blackjack",
			hand: []Card{{Suit: "hearts", Rank: "A"}, {Suit: "spades", Rank: "K"}},
			want: 21,
		},
		{
			name: "one of two aces demoted",
			hand: []Card{{Suit: "hearts", Rank: "A"}, {Suit: "clubs", Rank: "A"}, {Suit: "spades", Rank: "9"}},
			want: 21,
		},
		{
			name: "two of three aces demoted",
			hand: []Card{{Suit: "hearts", Rank: "A"}, {Suit: "clubs", Rank: "A"}, {Suit: "diamonds", Rank: "A"}, {Suit: "spades", Rank: "8"}},
			want: 21,
		},
		{
			name: "face cards count ten",
			hand: []Card{{Suit: "hearts", Rank: "J"}, {Suit: "spades", Rank: "Q"}},
			want: 20,
		},
		{
			name: "number cards at face value",
			hand: []Card{{Suit: "hearts", Rank: "2"}, {Suit: "spades", Rank: "7"}},
			want: 9,
		},
		{
			name: "soft ace stays eleven",
			hand: []Card{{Suit: "hearts", Rank: "A"}, {Suit: "spades", Rank: "5"}},
			want: 16,
		},
		{
			name: "busted hand over twenty one",
			hand: []Card{{Suit: "hearts", Rank: "K"}, {Suit: "spades", Rank: "Q"}, {Suit: "clubs", Rank: "5"}},
			want: 25,
		},
		{
			name: "empty hand",
			hand: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(tt.hand))
		})
	}
}

package slots

// Symbol is one reel symbol with its draw weight.
type Symbol struct {
	Name   string `json:"name" yaml:"name"`
	Icon   string `json:"icon" yaml:"icon"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Paytable holds payout multipliers per symbol. Three-match multipliers are
// applied as bet*multiplier, so the stake return is already included.
type Paytable struct {
	ThreeMatch map[string]int `yaml:"three_match"`
	TwoMatch   map[string]int `yaml:"two_match"`
}

// DefaultSymbols is the standard machine: weights sum to 100.
func DefaultSymbols() []Symbol {
	return []Symbol{
		{Name: "cherry", Icon: "🍒", Weight: 30},
		{Name: "lemon", Icon: "🍋", Weight: 25},
		{Name: "orange", Icon: "🍊", Weight: 20},
		{Name: "grape", Icon: "🍇", Weight: 15},
		{Name: "star", Icon: "⭐", Weight: 7},
		{Name: "seven", Icon: "7️⃣", Weight: 3},
	}
}

// DefaultPaytable is the standard payout schedule.
func DefaultPaytable() Paytable {
	return Paytable{
		ThreeMatch: map[string]int{
			"cherry": 5,
			"lemon":  8,
			"orange": 10,
			"grape":  15,
			"star":   25,
			"seven":  50,
		},
		TwoMatch: map[string]int{
			"cherry": 2,
			"lemon":  2,
			"orange": 3,
			"grape":  4,
			"star":   6,
			"seven":  10,
		},
	}
}

// buildPool repeats each symbol proportionally to its weight, simulating the
// non-uniform symbol probabilities with a flat list.
func buildPool(symbols []Symbol) []Symbol {
	var pool []Symbol
	for _, s := range symbols {
		for i := 0; i < s.Weight; i++ {
			pool = append(pool, s)
		}
	}
	return pool
}

package slots

import "fmt"

// PaytableSymbol describes one symbol without its weight.
type PaytableSymbol struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PaytableEntry is one payout line.
type PaytableEntry struct {
	Symbol      string `json:"symbol"`
	Multiplier  int    `json:"multiplier"`
	Description string `json:"description"`
}

// PaytableInfo is the full paytable for display.
type PaytableInfo struct {
	Symbols []PaytableSymbol `json:"symbols"`
	Payouts struct {
		ThreeMatch []PaytableEntry `json:"threeMatch"`
		TwoMatch   []PaytableEntry `json:"twoMatch"`
	} `json:"payouts"`
}

// SymbolProbability exposes a symbol's weight as a percentage, for
// transparency toward players.
type SymbolProbability struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Probability string `json:"probability"`
	Weight      int    `json:"weight"`
}

// PaytableData returns the machine's paytable. Pure and idempotent.
func (g *Game) PaytableData() PaytableInfo {
	var info PaytableInfo

	for _, s := range g.symbols {
		info.Symbols = append(info.Symbols, PaytableSymbol{Name: s.Name, Icon: s.Icon})

		if mult, ok := g.payouts.ThreeMatch[s.Name]; ok {
			info.Payouts.ThreeMatch = append(info.Payouts.ThreeMatch, PaytableEntry{
				Symbol:      s.Name,
				Multiplier:  mult,
				Description: fmt.Sprintf("Three %ss: %dx bet", s.Name, mult),
			})
		}
		if mult, ok := g.payouts.TwoMatch[s.Name]; ok {
			info.Payouts.TwoMatch = append(info.Payouts.TwoMatch, PaytableEntry{
				Symbol:      s.Name,
				Multiplier:  mult,
				Description: fmt.Sprintf("Two %ss: %dx bet", s.Name, mult),
			})
		}
	}

	return info
}

// SymbolProbabilities returns each symbol's draw probability.
func (g *Game) SymbolProbabilities() []SymbolProbability {
	totalWeight := 0
	for _, s := range g.symbols {
		totalWeight += s.Weight
	}

	probs := make([]SymbolProbability, 0, len(g.symbols))
	for _, s := range g.symbols {
		probs = append(probs, SymbolProbability{
			Name:        s.Name,
			Icon:        s.Icon,
			Probability: fmt.Sprintf("%.2f%%", float64(s.Weight)/float64(totalWeight)*100),
			Weight:      s.Weight,
		})
	}
	return probs
}

// SimulationResult aggregates outcomes of repeated spins.
type SimulationResult struct {
	TotalSpins      int            `json:"totalSpins"`
	Wins            int            `json:"wins"`
	Losses          int            `json:"losses"`
	ThreeMatches    int            `json:"threeMatches"`
	TwoMatches      int            `json:"twoMatches"`
	SymbolFrequency map[string]int `json:"symbolFrequency"`
	WinRate         string         `json:"winRate"`
	LossRate        string         `json:"lossRate"`
}

// Simulate runs n spins without touching any balance, for statistics and
// property testing.
func (g *Game) Simulate(n int) (*SimulationResult, error) {
	result := &SimulationResult{
		TotalSpins:      n,
		SymbolFrequency: make(map[string]int, len(g.symbols)),
	}
	for _, s := range g.symbols {
		result.SymbolFrequency[s.Name] = 0
	}

	for i := 0; i < n; i++ {
		reels, err := g.Spin()
		if err != nil {
			return nil, err
		}

		for _, r := range reels {
			result.SymbolFrequency[r.Name]++
		}

		switch CheckWin(reels).Type {
		case MatchThree:
			result.ThreeMatches++
			result.Wins++
		case MatchTwo:
			result.TwoMatches++
			result.Wins++
		default:
			result.Losses++
		}
	}

	result.WinRate = fmt.Sprintf("%.2f%%", float64(result.Wins)/float64(n)*100)
	result.LossRate = fmt.Sprintf("%.2f%%", float64(result.Losses)/float64(n)*100)

	return result, nil
}

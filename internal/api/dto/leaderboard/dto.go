package leaderboard

type Entry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Chips    int    `json:"chips"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

type TopResponse struct {
	Category string  `json:"category"`
	SortBy   string  `json:"sortBy"`
	Entries  []Entry `json:"entries"`
}

type StatsResponse struct {
	Game   string `json:"game"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Package recap holds the shapes of the year-summary payload produced by the
// recap backend. The contract is informally typed upstream: every nested block
// may legitimately be absent when a period had too little match data, and the
// percentage-shaped fields mix formatted strings with raw numbers, which is
// why they decode through metric.PercentLike instead of a plain float.
package recap

import (
	"riftrewind/pkg/metric"
)

// OverallStats is the aggregated stat block for a whole period.
type OverallStats struct {
	Games        *int               `json:"games,omitempty"`
	Winrate      metric.PercentLike `json:"winrate"`
	KDA          *float64           `json:"kda,omitempty"`
	CsPerMin     *float64           `json:"csPerMin,omitempty"`
	VisionPerMin *float64           `json:"visionPerMin,omitempty"`
	PrimaryRole  string             `json:"primaryRole,omitempty"`
}

// ChampRow is a full per-champion aggregate, used for the best champion.
type ChampRow struct {
	Name         string             `json:"name"`
	Role         string             `json:"role,omitempty"`
	Games        *int               `json:"games,omitempty"`
	Winrate      metric.PercentLike `json:"winrate"`
	KDA          *float64           `json:"kda,omitempty"`
	CsPerMin     *float64           `json:"csPerMin,omitempty"`
	VisionPerMin *float64           `json:"visionPerMin,omitempty"`
	KP           metric.PercentLike `json:"kp"`
	DmgShare     metric.PercentLike `json:"dmgShare"`
	Score        *float64           `json:"score,omitempty"`
}

// TopChamp is the reduced row used for the secondary champions list.
type TopChamp struct {
	Name    string             `json:"name"`
	Role    string             `json:"role,omitempty"`
	Games   *int               `json:"games,omitempty"`
	Winrate metric.PercentLike `json:"winrate"`
}

// CurrentRank is the player's current ranked standing.
type CurrentRank struct {
	Queue    string `json:"queue,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Division string `json:"division,omitempty"`
	LP       *int   `json:"lp,omitempty"`
	Wins     *int   `json:"wins,omitempty"`
	Losses   *int   `json:"losses,omitempty"`
}

// FunStat is the playful one-liner stat of the year.
type FunStat struct {
	Kind string `json:"kind,omitempty"`
	Text string `json:"text,omitempty"`
}

// BestGame is the single best match of the period.
type BestGame struct {
	Champion string `json:"champion"`
	KDA      string `json:"kda"`
}

// Advice is the structured coaching block.
type Advice struct {
	Summary  string   `json:"summary,omitempty"`
	Insights []string `json:"insights,omitempty"`
	Focus    []string `json:"focus,omitempty"`
	Fun      string   `json:"fun,omitempty"`
}

// YearSummary is the year-level block of the recap payload.
type YearSummary struct {
	PrimaryQueue  string        `json:"primaryQueue,omitempty"`
	GamesAnalyzed *int          `json:"gamesAnalyzed,omitempty"`
	Overall       *OverallStats `json:"overall,omitempty"`
	BestChamp     *ChampRow     `json:"bestChamp,omitempty"`
	TopChamps     []TopChamp    `json:"topChamps"`
	FunStat       *FunStat      `json:"funStat,omitempty"`
	BestGame      *BestGame     `json:"bestGame,omitempty"`
	BestGameQuote string        `json:"bestGameQuote,omitempty"`
	FeelGood      string        `json:"feelGood,omitempty"`
	Advice        *Advice       `json:"advice,omitempty"`
}

// SplitBlock is one split's worth of the recap payload.
type SplitBlock struct {
	SplitID       string        `json:"splitId"`
	PatchRange    string        `json:"patchRange,omitempty"`
	GamesAnalyzed int           `json:"gamesAnalyzed"`
	PrimaryQueue  string        `json:"primaryQueue,omitempty"`
	Overall       *OverallStats `json:"overall,omitempty"`
	BestChamp     *ChampRow     `json:"bestChamp,omitempty"`
	TopChamps     []TopChamp    `json:"topChamps"`
}

// YearResponse is the full payload of the backend's year-summary endpoint.
type YearResponse struct {
	Splits      map[string]SplitBlock `json:"splits,omitempty"`
	Year        *YearSummary          `json:"year,omitempty"`
	CurrentRank *CurrentRank          `json:"currentRank,omitempty"`
}

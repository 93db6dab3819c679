package dto

// MetricView is a proportion ready for the presentation layer: a clamped
// 0-100 bar width plus the fixed-precision display text (or the placeholder).
type MetricView struct {
	Bar  float64 `json:"bar"`
	Text string  `json:"text"`
}

// OverallView is the normalized overall stat block.
type OverallView struct {
	Games        int        `json:"games"`
	Winrate      MetricView `json:"winrate"`
	KDA          string     `json:"kda"`
	CsPerMin     string     `json:"csPerMin"`
	VisionPerMin string     `json:"visionPerMin"`
	PrimaryRole  string     `json:"primaryRole,omitempty"`
}

// ChampView is a normalized per-champion row with its resolved icon.
type ChampView struct {
	Name     string     `json:"name"`
	Role     string     `json:"role,omitempty"`
	IconURL  string     `json:"iconUrl"`
	Games    int        `json:"games"`
	Winrate  MetricView `json:"winrate"`
	KDA      string     `json:"kda"`
	KP       MetricView `json:"kp"`
	DmgShare MetricView `json:"dmgShare"`
}

// TopChampView is a normalized secondary-champion row.
type TopChampView struct {
	Name    string     `json:"name"`
	Role    string     `json:"role,omitempty"`
	IconURL string     `json:"iconUrl"`
	Games   int        `json:"games"`
	Winrate MetricView `json:"winrate"`
}

// PeriodView is one normalized period, either a split or the whole year.
type PeriodView struct {
	SplitID       string         `json:"splitId,omitempty"`
	PatchRange    string         `json:"patchRange,omitempty"`
	GamesAnalyzed int            `json:"gamesAnalyzed"`
	PrimaryQueue  string         `json:"primaryQueue,omitempty"`
	Overall       *OverallView   `json:"overall,omitempty"`
	BestChamp     *ChampView     `json:"bestChamp,omitempty"`
	TopChamps     []TopChampView `json:"topChamps"`
}

// RankView is the normalized current rank.
type RankView struct {
	Queue    string `json:"queue,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Division string `json:"division,omitempty"`
	LP       int    `json:"lp"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

// SummaryView is the full normalized recap served to the pages.
type SummaryView struct {
	RiotID          string                `json:"riotId"`
	DataVersion     string                `json:"dataVersion"`
	VersionResolved bool                  `json:"versionResolved"`
	Splits          map[string]PeriodView `json:"splits,omitempty"`
	Year            *PeriodView           `json:"year,omitempty"`
	CurrentRank     *RankView             `json:"currentRank,omitempty"`
	FunStat         string                `json:"funStat,omitempty"`
	BestGameQuote   string                `json:"bestGameQuote,omitempty"`
	FeelGood        string                `json:"feelGood,omitempty"`
}

// ChampionIcon is the resolved icon data for one champion name.
type ChampionIcon struct {
	Name            string `json:"name"`
	AssetKey        string `json:"assetKey"`
	IconURL         string `json:"iconUrl"`
	DataVersion     string `json:"dataVersion"`
	VersionResolved bool   `json:"versionResolved"`
}

// Package compare computes the deterministic verdict anchor between two
// exported player profiles. Rank is weighted much heavier than raw
// performance, so a Gold player with a great winrate still loses the anchor
// to a Diamond player with an average one.
package compare

import (
	"math"
	"strings"

	"riftrewind/pkg/export"
)

// Elo-like baseline per tier.
var tierElo = map[string]float64{
	"iron": 400, "bronze": 600, "silver": 800, "gold": 1000,
	"platinum": 1200, "emerald": 1400, "diamond": 1600,
	"master": 1800, "grandmaster": 1950, "challenger": 2100,
}

const (
	divStep       = 80.0
	lpScale       = 2.0
	eloWeight     = 0.85
	perfWeight    = 0.15
	logisticScale = 200.0
)

// Result is the outcome of comparing profile A against profile B.
type Result struct {
	AWinPct float64  `json:"aWinPct"`
	Anchor  float64  `json:"anchor"`
	Summary string   `json:"summary"`
	Reasons []string `json:"reasons"`
}

// RankToElo converts an exported rank block to the elo-like scale.
// Unranked or missing blocks score zero.
func RankToElo(rank *export.RankBlock) float64 {
	if rank == nil || rank.Tier == "" {
		return 0
	}

	base, ok := tierElo[strings.ToLower(rank.Tier)]
	if !ok {
		return 0
	}

	var divScore float64
	switch strings.ToUpper(rank.Division) {
	case "I":
		divScore = 3
	case "II":
		divScore = 2
	case "III":
		divScore = 1
	}

	lp := 0.0
	if rank.LP != nil {
		lp = float64(*rank.LP)
	}

	return base + divScore*divStep + lp*lpScale
}

// PerfScore reduces the overall block to a single modest-influence number.
func PerfScore(profile *export.PlayerProfile) float64 {
	if profile == nil || profile.Overall == nil {
		return 0
	}
	o := profile.Overall

	return asPercent(o.Winrate)*2.0 +
		deref(o.KDA)*8.0 +
		deref(o.CsPerMin)*2.0 +
		deref(o.VisionPerMin)*1.5
}

// AnchorWinPct computes the rank-heavy anchor win percentage for A,
// rounded to one decimal.
func AnchorWinPct(a *export.PlayerProfile, b *export.PlayerProfile) float64 {
	aRating := eloWeight*RankToElo(rank(a)) + perfWeight*PerfScore(a)
	bRating := eloWeight*RankToElo(rank(b)) + perfWeight*PerfScore(b)

	diff := aRating - bRating
	p := 1.0 / (1.0 + math.Exp(-diff/logisticScale))
	return math.Round(p*1000) / 10
}

// Profiles compares A against B and returns the anchored verdict.
func Profiles(a *export.PlayerProfile, b *export.PlayerProfile) *Result {
	anchor := AnchorWinPct(a, b)
	return &Result{
		AWinPct: anchor,
		Anchor:  anchor,
		Summary: "Verdict weighted by rank/LP with minor performance adjustments.",
		Reasons: []string{
			"Higher competitive rank carries the most weight in outcome prediction.",
			"Performance statistics (winrate/KDA/CS/vision) considered as small adjustments.",
		},
	}
}

func rank(p *export.PlayerProfile) *export.RankBlock {
	if p == nil {
		return nil
	}
	return p.Rank
}

// The v1 schema stores winrate as a 0-1 fraction; promote it to the 0-100
// scale the scoring weights were tuned for. Values already above 1 pass
// through, so hand-edited files on the percent scale still compare sanely.
func asPercent(v *float64) float64 {
	if v == nil {
		return 0
	}
	if *v >= 0 && *v <= 1 {
		return *v * 100
	}
	return *v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

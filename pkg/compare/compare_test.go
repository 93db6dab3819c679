package compare

import (
	"testing"

	"riftrewind/pkg/export"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func rankedProfile(tier string, division string, lp int) *export.PlayerProfile {
	return &export.PlayerProfile{
		Version:  export.SchemaVersion,
		PlayerID: tier + "#" + division,
		Rank: &export.RankBlock{
			Queue:    "RANKED_SOLO_5x5",
			Tier:     tier,
			Division: division,
			LP:       intPtr(lp),
		},
		TopChamps: []export.TopChampEntry{},
	}
}

func TestRankToElo(t *testing.T) {
	tests := []struct {
		name     string
		rank     *export.RankBlock
		expected float64
	}{
		{"gold one with lp", &export.RankBlock{Tier: "GOLD", Division: "I", LP: intPtr(50)}, 1000 + 3*80 + 100},
		{"iron four", &export.RankBlock{Tier: "IRON", Division: "IV"}, 400},
		{"challenger", &export.RankBlock{Tier: "CHALLENGER", Division: "I"}, 2100 + 240},
		{"lowercase tier", &export.RankBlock{Tier: "emerald", Division: "II"}, 1400 + 160},
		{"unknown tier", &export.RankBlock{Tier: "WOOD", Division: "I"}, 0},
		{"unranked", &export.RankBlock{}, 0},
		{"missing block", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RankToElo(tt.rank), 1e-9)
		})
	}
}

func TestPerfScore(t *testing.T) {
	profile := &export.PlayerProfile{
		Overall: &export.OverallBlock{
			Winrate:      floatPtr(0.53), // fraction, promoted to 53
			KDA:          floatPtr(2.5),
			CsPerMin:     floatPtr(7.0),
			VisionPerMin: floatPtr(0.8),
		},
	}

	expected := 53.0*2.0 + 2.5*8.0 + 7.0*2.0 + 0.8*1.5
	assert.InDelta(t, expected, PerfScore(profile), 1e-9)

	assert.Zero(t, PerfScore(nil))
	assert.Zero(t, PerfScore(&export.PlayerProfile{}))
}

// A winrate already on the percent scale passes through unpromoted.
func TestPerfScorePercentScaleInput(t *testing.T) {
	fraction := &export.PlayerProfile{Overall: &export.OverallBlock{Winrate: floatPtr(0.53)}}
	percent := &export.PlayerProfile{Overall: &export.OverallBlock{Winrate: floatPtr(53.0)}}

	assert.InDelta(t, PerfScore(fraction), PerfScore(percent), 1e-9)
}

func TestAnchorWinPct(t *testing.T) {
	gold := rankedProfile("GOLD", "II", 30)
	diamond := rankedProfile("DIAMOND", "IV", 10)

	// Equal inputs anchor at a coin flip.
	assert.InDelta(t, 50.0, AnchorWinPct(gold, gold), 1e-9)

	// Rank dominates: the higher tier gets the majority side.
	anchor := AnchorWinPct(diamond, gold)
	assert.Greater(t, anchor, 50.0)
	assert.Less(t, anchor, 100.0)

	// Symmetry within rounding.
	assert.InDelta(t, 100.0, anchor+AnchorWinPct(gold, diamond), 0.11)
}

func TestProfilesVerdict(t *testing.T) {
	result := Profiles(rankedProfile("PLATINUM", "I", 75), rankedProfile("SILVER", "III", 20))

	assert.Equal(t, result.Anchor, result.AWinPct)
	assert.Greater(t, result.AWinPct, 50.0)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Reasons)
}

// Profiles with no rank at all still compare without blowing up.
func TestProfilesUnranked(t *testing.T) {
	a := &export.PlayerProfile{Version: export.SchemaVersion, PlayerID: "a"}
	b := &export.PlayerProfile{Version: export.SchemaVersion, PlayerID: "b"}

	result := Profiles(a, b)
	assert.InDelta(t, 50.0, result.AWinPct, 1e-9)
}

// Package export builds and re-ingests the shareable player profile file.
// The schema is versioned so two exports taken months apart can still be
// compared: every percentage is a 0-1 fraction, never a formatted string,
// and unknown stats are omitted instead of zero-filled, so a missing value
// can never be misread as a known zero.
package export

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"riftrewind/pkg/messages"
	"riftrewind/pkg/metric"
	"riftrewind/pkg/models/recap"
)

// SchemaVersion is the discriminator written into every export.
// Consumers must check it before interpreting the rest of the object.
const SchemaVersion = "v1"

// RankBlock is the exported ranked standing.
type RankBlock struct {
	Queue    string `json:"queue,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Division string `json:"division,omitempty"`
	LP       *int   `json:"lp,omitempty"`
	Wins     *int   `json:"wins,omitempty"`
	Losses   *int   `json:"losses,omitempty"`
}

// OverallBlock is the exported overall stat block.
type OverallBlock struct {
	Games        *int     `json:"games,omitempty"`
	Winrate      *float64 `json:"winrate,omitempty"`
	KDA          *float64 `json:"kda,omitempty"`
	CsPerMin     *float64 `json:"csPerMin,omitempty"`
	VisionPerMin *float64 `json:"visionPerMin,omitempty"`
}

// BestChampBlock is the exported best-champion block.
type BestChampBlock struct {
	Name     string   `json:"name"`
	Role     string   `json:"role,omitempty"`
	Games    *int     `json:"games,omitempty"`
	Winrate  *float64 `json:"winrate,omitempty"`
	KDA      *float64 `json:"kda,omitempty"`
	KP       *float64 `json:"kp,omitempty"`
	DmgShare *float64 `json:"dmgShare,omitempty"`
}

// TopChampEntry is one secondary champion in the exported list.
type TopChampEntry struct {
	Name    string   `json:"name"`
	Role    string   `json:"role,omitempty"`
	Games   *int     `json:"games,omitempty"`
	Winrate *float64 `json:"winrate,omitempty"`
}

// PlayerProfile is the external, shareable representation of one player's
// aggregated year (schema v1).
type PlayerProfile struct {
	Version   string          `json:"version"`
	PlayerID  string          `json:"playerId"`
	Rank      *RankBlock      `json:"rank,omitempty"`
	Role      string          `json:"role,omitempty"`
	Overall   *OverallBlock   `json:"overall,omitempty"`
	BestChamp *BestChampBlock `json:"bestChamp,omitempty"`
	TopChamps []TopChampEntry `json:"topChamps"`
}

// BuildPlayerProfile projects the in-memory year summary into the v1 export
// schema. Absent or malformed nested data degrades to omitted fields, never
// an error, since this runs inside a user-initiated download action that must
// not abort over incomplete stats.
//
// Rank, overall and bestChamp are omitted when their source blocks are
// missing, but topChamps is always present, because "no secondary champions"
// is a known fact rather than missing data.
func BuildPlayerProfile(identifier string, summary *recap.YearResponse) *PlayerProfile {
	profile := &PlayerProfile{
		Version:   SchemaVersion,
		PlayerID:  identifier,
		TopChamps: []TopChampEntry{},
	}

	if summary == nil {
		return profile
	}

	if rank := summary.CurrentRank; rank != nil {
		profile.Rank = &RankBlock{
			Queue:    rank.Queue,
			Tier:     rank.Tier,
			Division: rank.Division,
			LP:       copyInt(rank.LP),
			Wins:     copyInt(rank.Wins),
			Losses:   copyInt(rank.Losses),
		}
	}

	year := summary.Year
	if year == nil {
		return profile
	}

	if overall := year.Overall; overall != nil {
		profile.Role = overall.PrimaryRole
		profile.Overall = &OverallBlock{
			Games:        copyInt(overall.Games),
			Winrate:      fraction(overall.Winrate),
			KDA:          copyFloat(overall.KDA),
			CsPerMin:     copyFloat(overall.CsPerMin),
			VisionPerMin: copyFloat(overall.VisionPerMin),
		}
	}

	if best := year.BestChamp; best != nil {
		profile.BestChamp = &BestChampBlock{
			Name:     best.Name,
			Role:     best.Role,
			Games:    copyInt(best.Games),
			Winrate:  fraction(best.Winrate),
			KDA:      copyFloat(best.KDA),
			KP:       fraction(best.KP),
			DmgShare: fraction(best.DmgShare),
		}
	}

	for _, champ := range year.TopChamps {
		profile.TopChamps = append(profile.TopChamps, TopChampEntry{
			Name:    champ.Name,
			Role:    champ.Role,
			Games:   copyInt(champ.Games),
			Winrate: fraction(champ.Winrate),
		})
	}

	return profile
}

// ParseProfile re-ingests an exported file, enforcing the discriminator.
func ParseProfile(data []byte) (*PlayerProfile, error) {
	var profile PlayerProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	if profile.Version != SchemaVersion {
		return nil, fmt.Errorf(messages.UnsupportedVersion, profile.Version, SchemaVersion)
	}

	if profile.TopChamps == nil {
		profile.TopChamps = []TopChampEntry{}
	}
	return &profile, nil
}

// Convert a percent-like source value to an exported 0-1 fraction pointer,
// nil when the source is absent or unparsable.
func fraction(p metric.PercentLike) *float64 {
	v, ok := p.Fraction()
	if !ok {
		return nil
	}
	// Keep the file stable across encode cycles.
	v = roundFraction(v)
	return &v
}

// Round to 6 decimal places, enough for two-decimal percent inputs.
func roundFraction(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	// Guard against -0 showing up in the file.
	if r == 0 {
		return 0
	}
	return r
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	// Normalize the precision the same way the backend formats numbers.
	c, _ := strconv.ParseFloat(strconv.FormatFloat(*v, 'f', -1, 64), 64)
	return &c
}

package ddragon

import (
	"fmt"
	"strings"
)

// The ddragon filename is not a pure function of the display name: possessive
// apostrophes, ampersands, multi-word names and title variants all have real
// exceptions on the CDN. The table is the closed set of those exceptions and
// must stay exhaustive; everything else goes through the mechanical rule.
var assetKeyExceptions = map[string]string{
	"Kai'Sa":         "Kaisa",
	"Kha'Zix":        "Khazix",
	"Cho'Gath":       "Chogath",
	"Vel'Koz":        "Velkoz",
	"Kog'Maw":        "KogMaw",
	"Rek'Sai":        "RekSai",
	"Bel'Veth":       "Belveth",
	"K'Sante":        "KSante",
	"Nunu & Willump": "Nunu",
	"Dr. Mundo":      "DrMundo",
	"Jarvan IV":      "JarvanIV",
	"Lee Sin":        "LeeSin",
	"Master Yi":      "MasterYi",
	"Miss Fortune":   "MissFortune",
	"Twisted Fate":   "TwistedFate",
	"Tahm Kench":     "TahmKench",
	"Xin Zhao":       "XinZhao",
	"Aurelion Sol":   "AurelionSol",
	"Renata Glasc":   "Renata",
	"LeBlanc":        "Leblanc",
	"Wukong":         "MonkeyKing",
}

// Characters the CDN drops from names derived mechanically.
var assetKeyStripper = strings.NewReplacer("'", "", ".", "", "&", "")

// ResolveAssetKey maps a champion display name to the CDN filename stem.
// Unknown names go through the mechanical derivation and empty names resolve
// to the fallback key, so the caller always gets a renderable key.
func ResolveAssetKey(name string) string {
	if key, ok := assetKeyExceptions[name]; ok {
		return key
	}

	key := strings.Join(strings.Fields(assetKeyStripper.Replace(name)), "")
	if key == "" {
		return FallbackAssetKey
	}
	return key
}

// IconURL composes the versioned champion icon URL.
// Exact and case sensitive, the CDN path is a public contract.
func IconURL(name string, version string) string {
	return fmt.Sprintf("%s/%s/img/champion/%s.png", cdnBase, version, ResolveAssetKey(name))
}

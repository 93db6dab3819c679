package ddragon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every exception-prone name must resolve to the exact recorded CDN key.
func TestResolveAssetKeyExceptions(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Kai'Sa", "Kaisa"},
		{"Kha'Zix", "Khazix"},
		{"Cho'Gath", "Chogath"},
		{"Vel'Koz", "Velkoz"},
		{"Kog'Maw", "KogMaw"},
		{"Rek'Sai", "RekSai"},
		{"Bel'Veth", "Belveth"},
		{"K'Sante", "KSante"},
		{"Nunu & Willump", "Nunu"},
		{"Dr. Mundo", "DrMundo"},
		{"Jarvan IV", "JarvanIV"},
		{"Lee Sin", "LeeSin"},
		{"Master Yi", "MasterYi"},
		{"Miss Fortune", "MissFortune"},
		{"Twisted Fate", "TwistedFate"},
		{"Tahm Kench", "TahmKench"},
		{"Xin Zhao", "XinZhao"},
		{"Aurelion Sol", "AurelionSol"},
		{"Renata Glasc", "Renata"},
		{"LeBlanc", "Leblanc"},
		{"Wukong", "MonkeyKing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAssetKey(tt.name))
		})
	}
}

// Untabled names go through the mechanical derivation: strip apostrophes,
// periods and ampersands, drop whitespace, keep the case.
func TestResolveAssetKeyMechanical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Ahri", "Ahri"},
		{"hypothetical dotted name", "Mock.Name", "MockName"},
		{"hypothetical spaced name", "New Champ", "NewChamp"},
		{"hypothetical apostrophe name", "Za'Hir", "ZaHir"},
		{"ampersand with spaces", "Left & Right", "LeftRight"},
		{"surrounding whitespace", "  Ahri  ", "Ahri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAssetKey(tt.input))
		})
	}
}

// The mapping is total: unusable input falls back instead of failing.
func TestResolveAssetKeyFallback(t *testing.T) {
	assert.Equal(t, FallbackAssetKey, ResolveAssetKey(""))
	assert.Equal(t, FallbackAssetKey, ResolveAssetKey("   "))
	assert.Equal(t, FallbackAssetKey, ResolveAssetKey("'&."))
}

func TestIconURL(t *testing.T) {
	url := IconURL("Kai'Sa", "14.21.1")
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/14.21.1/img/champion/Kaisa.png", url)

	// The fallback key still yields a valid URL.
	url = IconURL("", "14.21.1")
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/14.21.1/img/champion/Aatrox.png", url)
}

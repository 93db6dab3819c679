package ddragon

// Consts used across the package.
const (
	cdnBase    = "https://ddragon.leagueoflegends.com/cdn"
	versionURL = "https://ddragon.leagueoflegends.com/api/versions.json"
	versionKey = "ddragon:versions"

	// FallbackVersion is the pre-seeded data version used until the
	// versions feed resolves, or forever if it never does.
	FallbackVersion = "14.21.1"

	// FallbackAssetKey is the known-good key returned for names that
	// can't be resolved at all. A wrong icon is harmless, a crash is not.
	FallbackAssetKey = "Aatrox"
)

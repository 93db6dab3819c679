package filters

// ChampionURIParams are the URI params for the champion icon endpoint.
type ChampionURIParams struct {
	Name string `uri:"name" binding:"required"`
}

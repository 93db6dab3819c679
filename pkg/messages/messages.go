package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	FiltersNotNil       = "filters can't be nil"
	ProfileNotFound     = "couldn't find a stored profile for the player %s"
	RequestFailedMsg    = "API request failed on URL %s"
	UnsupportedVersion  = "unsupported profile version %q, expected %q"
	MissingRiotIdFields = "both the game name and the tag must be provided"
)

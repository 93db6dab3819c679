package filters

// SummaryURIParams are the URI params for the year-summary endpoint.
type SummaryURIParams struct {
	Region   string `uri:"region" binding:"required"`
	GameName string `uri:"gameName" binding:"required"`
	GameTag  string `uri:"gameTag" binding:"required"`
}

// SummaryFilter is the validated filter used by the summary service.
type SummaryFilter struct {
	Region   string
	GameName string
	GameTag  string
}

// NewSummaryFilter creates the filter from the bound params.
func NewSummaryFilter(params *SummaryURIParams) *SummaryFilter {
	return &SummaryFilter{
		Region:   params.Region,
		GameName: params.GameName,
		GameTag:  params.GameTag,
	}
}

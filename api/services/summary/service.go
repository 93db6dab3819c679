package summaryservice

import (
	"context"
	"fmt"
	"time"

	"riftrewind/api/cache"
	"riftrewind/api/clients"
	"riftrewind/api/dto"
	"riftrewind/api/filters"
	"riftrewind/pkg/ddragon"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/messages"
	"riftrewind/pkg/metric"
	"riftrewind/pkg/models/recap"
)

// Keep fully normalized responses for a few minutes, the recap data only
// changes when the backend re-aggregates.
const responseTTL = 5 * time.Minute

// SummaryService normalizes the loosely-typed backend payload into the
// strongly-typed view the pages consume: clamped bar metrics, placeholder
// display strings and resolved icon URLs.
type SummaryService struct {
	client   clients.RecapClient
	cache    *cache.SimpleCache
	versions *ddragon.VersionHolder
	log      *logger.NewLogger
}

// SummaryServiceDeps is the dependency list for the summary service.
type SummaryServiceDeps struct {
	Client   clients.RecapClient
	Cache    *cache.SimpleCache
	Versions *ddragon.VersionHolder
	Logger   *logger.NewLogger
}

// NewSummaryService creates a summary service.
func NewSummaryService(deps *SummaryServiceDeps) *SummaryService {
	return &SummaryService{
		client:   deps.Client,
		cache:    deps.Cache,
		versions: deps.Versions,
		log:      deps.Logger,
	}
}

// GetYearSummary returns the normalized recap for a player, cached per
// region and riot id.
func (s *SummaryService) GetYearSummary(ctx context.Context, f *filters.SummaryFilter) (*dto.SummaryView, error) {
	if f == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	cacheKey := fmt.Sprintf("yearresp:%s:%s#%s", f.Region, f.GameName, f.GameTag)
	if cached := s.cache.Get(cacheKey); cached != nil {
		if view, ok := cached.(*dto.SummaryView); ok {
			return view, nil
		}
	}

	// Fire-and-forget: the fallback version serves this request, a later
	// one may get the real one.
	s.versions.Resolve()

	summary, err := s.client.GetYearSummary(ctx, f.Region, f.GameName, f.GameTag)
	if err != nil {
		return nil, err
	}

	view := s.buildSummaryView(f.GameName+"#"+f.GameTag, summary)
	s.cache.Set(cacheKey, view, responseTTL)

	return view, nil
}

// GetChampionIcon resolves the asset key and icon URL for a display name.
// Synchronous and total: an unknown name still yields a renderable icon.
func (s *SummaryService) GetChampionIcon(name string) *dto.ChampionIcon {
	version := s.versions.Current()
	return &dto.ChampionIcon{
		Name:            name,
		AssetKey:        ddragon.ResolveAssetKey(name),
		IconURL:         ddragon.IconURL(name, version),
		DataVersion:     version,
		VersionResolved: s.versions.Resolved(),
	}
}

// Build the full view from the backend payload.
func (s *SummaryService) buildSummaryView(riotId string, summary *recap.YearResponse) *dto.SummaryView {
	version := s.versions.Current()

	view := &dto.SummaryView{
		RiotID:          riotId,
		DataVersion:     version,
		VersionResolved: s.versions.Resolved(),
	}

	if summary == nil {
		return view
	}

	if len(summary.Splits) > 0 {
		view.Splits = make(map[string]dto.PeriodView, len(summary.Splits))
		for id, split := range summary.Splits {
			view.Splits[id] = dto.PeriodView{
				SplitID:       split.SplitID,
				PatchRange:    split.PatchRange,
				GamesAnalyzed: split.GamesAnalyzed,
				PrimaryQueue:  split.PrimaryQueue,
				Overall:       buildOverallView(split.Overall),
				BestChamp:     s.buildChampView(split.BestChamp, version),
				TopChamps:     s.buildTopChampViews(split.TopChamps, version),
			}
		}
	}

	if year := summary.Year; year != nil {
		view.Year = &dto.PeriodView{
			GamesAnalyzed: derefInt(year.GamesAnalyzed),
			PrimaryQueue:  year.PrimaryQueue,
			Overall:       buildOverallView(year.Overall),
			BestChamp:     s.buildChampView(year.BestChamp, version),
			TopChamps:     s.buildTopChampViews(year.TopChamps, version),
		}
		if year.FunStat != nil {
			view.FunStat = year.FunStat.Text
		}
		view.BestGameQuote = year.BestGameQuote
		view.FeelGood = year.FeelGood
	}

	if rank := summary.CurrentRank; rank != nil {
		view.CurrentRank = &dto.RankView{
			Queue:    rank.Queue,
			Tier:     rank.Tier,
			Division: rank.Division,
			LP:       derefInt(rank.LP),
			Wins:     derefInt(rank.Wins),
			Losses:   derefInt(rank.Losses),
		}
	}

	return view
}

func buildOverallView(overall *recap.OverallStats) *dto.OverallView {
	if overall == nil {
		return nil
	}
	return &dto.OverallView{
		Games:        derefInt(overall.Games),
		Winrate:      metricView(overall.Winrate),
		KDA:          floatText(overall.KDA),
		CsPerMin:     floatText(overall.CsPerMin),
		VisionPerMin: floatText(overall.VisionPerMin),
		PrimaryRole:  overall.PrimaryRole,
	}
}

func (s *SummaryService) buildChampView(champ *recap.ChampRow, version string) *dto.ChampView {
	if champ == nil {
		return nil
	}
	return &dto.ChampView{
		Name:     champ.Name,
		Role:     champ.Role,
		IconURL:  ddragon.IconURL(champ.Name, version),
		Games:    derefInt(champ.Games),
		Winrate:  metricView(champ.Winrate),
		KDA:      floatText(champ.KDA),
		KP:       metricView(champ.KP),
		DmgShare: metricView(champ.DmgShare),
	}
}

func (s *SummaryService) buildTopChampViews(champs []recap.TopChamp, version string) []dto.TopChampView {
	// Always present: no secondary champions is a known fact, not missing data.
	views := make([]dto.TopChampView, 0, len(champs))
	for _, champ := range champs {
		views = append(views, dto.TopChampView{
			Name:    champ.Name,
			Role:    champ.Role,
			IconURL: ddragon.IconURL(champ.Name, version),
			Games:   derefInt(champ.Games),
			Winrate: metricView(champ.Winrate),
		})
	}
	return views
}

// A proportion becomes one clamped bar width plus one display string.
func metricView(p metric.PercentLike) dto.MetricView {
	text := metric.Placeholder
	if !p.IsMissing() {
		text = metric.ToFixedDisplay(p, 2)
	}
	return dto.MetricView{
		Bar:  metric.ToClampedPercent(p),
		Text: text,
	}
}

func floatText(v *float64) string {
	if v == nil {
		return metric.Placeholder
	}
	return metric.ToFixedDisplay(*v, 2)
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

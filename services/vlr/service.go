package vlr

import (
	"context"
	"time"
	"vlrdata-backend/lib/restyutil"
	scraper "vlrdata-backend/lib/scrapers/vlr"
	"vlrdata-backend/lib/timezone"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/vlr")

type Options struct {
	// BaseUrl defaults to the public site.
	BaseUrl string
	// Timeout defaults to the scraper client's default.
	Timeout time.Duration
	// TierKeywords filters the upcoming match list by event name.
	// Empty means no filtering.
	TierKeywords []string
}

type Service struct {
	fetcher scraper.Fetcher
	client  *scraper.Client
	tiers   []string
}

func NewService(opts Options) (Service, error) {
	client, err := scraper.NewClient(scraper.ClientOptions{
		BaseUrl: opts.BaseUrl,
		Timeout: opts.Timeout,
	})
	if err != nil {
		return Service{}, err
	}
	return Service{
		fetcher: client,
		client:  client,
		tiers:   opts.TierKeywords,
	}, nil
}

// WithTierKeywords returns a copy of the service that filters the match
// list by the given event keywords.
func (s Service) WithTierKeywords(tokens []string) Service {
	s.tiers = tokens
	return s
}

func (s Service) SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	if s.client != nil {
		s.client.SetInstrumentOutput(output)
	}
}

// Matches returns the upcoming match list, filtered by the configured
// tier keywords.
func (s Service) Matches(ctx context.Context) ([]scraper.MatchSummary, error) {
	ctx, span := tracer.Start(ctx, "Matches")
	defer span.End()

	doc, err := s.fetcher.FetchDocument(ctx, "/matches")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	matches := scraper.ExtractMatchList(doc, timezone.Now())
	return scraper.FilterTier(matches, s.tiers), nil
}

// Match returns the full detail for one match, including per-map player
// statistics and enriched avatars.
func (s Service) Match(ctx context.Context, id string) (scraper.MatchDetail, error) {
	ctx, span := tracer.Start(ctx, "Match")
	defer span.End()

	doc, err := s.fetcher.FetchDocument(ctx, "/"+id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.MatchDetail{}, err
	}

	return scraper.ExtractMatchDetail(ctx, doc, s.fetcher), nil
}

// Live returns the matches currently in progress on the front page.
func (s Service) Live(ctx context.Context) ([]scraper.LiveMatch, error) {
	ctx, span := tracer.Start(ctx, "Live")
	defer span.End()

	doc, err := s.fetcher.FetchDocument(ctx, "/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return scraper.ExtractLiveMatches(doc), nil
}

// Team returns a team's profile, roster and recent results.
func (s Service) Team(ctx context.Context, id string) (scraper.TeamProfile, error) {
	ctx, span := tracer.Start(ctx, "Team")
	defer span.End()

	doc, err := s.fetcher.FetchDocument(ctx, "/team/"+id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.TeamProfile{}, err
	}

	return scraper.ExtractTeam(ctx, doc, s.fetcher), nil
}

// Player returns a player's profile and career statistics.
func (s Service) Player(ctx context.Context, id string) (scraper.PlayerProfile, error) {
	ctx, span := tracer.Start(ctx, "Player")
	defer span.End()

	doc, err := s.fetcher.FetchDocument(ctx, "/player/"+id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.PlayerProfile{}, err
	}

	return scraper.ExtractPlayer(doc), nil
}

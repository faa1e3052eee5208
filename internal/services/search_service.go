package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"campusnav/internal/models/domain_models"
	"campusnav/internal/repositories"
	mem "campusnav/pkg/memcache"
	"campusnav/pkg/utils"
)

const (
	defaultMaxResults = 8

	// Scoring weights. A match at the front of the name dominates; a match
	// found only in the keyword tags sits below any name match; curated
	// static entries get a flat bonus over API records of equal textual
	// relevance. Position penalty is capped so a late name match still
	// outranks a keyword-only match.
	scoreNameBase      = 100
	maxPositionPenalty = 40
	scoreDescription   = 40
	scoreKeyword       = 25
	scoreProviderOnly  = 10
	staticSourceBonus  = 15
)

// SearchOptions tune a single SearchCampus call. Zero values mean defaults.
type SearchOptions struct {
	MaxResults int
	TTL        time.Duration
}

type SearchServiceInterface interface {
	SearchCampus(ctx context.Context, query string, opts SearchOptions) domain_models.SearchResultSet
	GetLocationByID(id string) (domain_models.CampusLocation, error)
}

// SearchService merges static catalog matches with live places-API results,
// ranks them, and caches per normalized query. It never fails: when the
// provider is unavailable the static catalog alone answers the query.
type SearchService struct {
	catalog    repositories.StaticCatalog
	places     PlacesClientInterface
	cache      *mem.Store[domain_models.SearchResultSet]
	defaultTTL time.Duration
	apiTimeout time.Duration

	// Monotonic per-call sequence; cache writes are conditioned on it so a
	// slow provider response for an older query cannot clobber the entry a
	// newer identical query already wrote.
	seq atomic.Uint64
}

func NewSearchService(
	catalog repositories.StaticCatalog,
	places PlacesClientInterface,
	defaultTTL time.Duration,
) SearchServiceInterface {
	return &SearchService{
		catalog:    catalog,
		places:     places,
		cache:      mem.NewStore[domain_models.SearchResultSet](),
		defaultTTL: defaultTTL,
		apiTimeout: 8 * time.Second,
	}
}

func (s *SearchService) SearchCampus(ctx context.Context, query string, opts SearchOptions) domain_models.SearchResultSet {
	start := time.Now()

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < 2 {
		// Too short to mean anything: no network call, no cache write.
		return domain_models.SearchResultSet{
			Results:      []domain_models.CampusLocation{},
			Source:       domain_models.ResultSourceStaticOnly,
			SearchTimeMs: int(time.Since(start).Milliseconds()),
			Query:        trimmed,
		}
	}

	normalized := strings.ToLower(trimmed)
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	if cached, ok := s.cache.Get(normalized); ok {
		cached.Source = domain_models.ResultSourceCache
		cached.SearchTimeMs = int(time.Since(start).Milliseconds())
		return cached
	}

	seq := s.seq.Add(1)

	apiCtx, cancel := context.WithTimeout(ctx, s.apiTimeout)
	defer cancel()

	type placesOutcome struct {
		locations []domain_models.CampusLocation
		err       error
	}
	outcome := make(chan placesOutcome, 1)
	go func() {
		locations, err := s.places.Search(apiCtx, normalized, maxResults)
		outcome <- placesOutcome{locations: locations, err: err}
	}()

	// The static path never blocks on the provider.
	staticMatches := s.catalog.FindMatching(normalized)

	var apiMatches []domain_models.CampusLocation
	var apiErr error
	select {
	case out := <-outcome:
		apiMatches, apiErr = out.locations, out.err
	case <-apiCtx.Done():
		apiErr = apiCtx.Err()
	}

	source := domain_models.ResultSourceMerged
	if apiErr != nil || len(apiMatches) == 0 {
		if apiErr != nil {
			log.Printf("Places search for %q degraded to static catalog: %v", normalized, apiErr)
		}
		source = domain_models.ResultSourceStaticOnly
		apiMatches = nil
	}

	result := domain_models.SearchResultSet{
		Results:      mergeAndRank(normalized, staticMatches, apiMatches, maxResults),
		Source:       source,
		SearchTimeMs: int(time.Since(start).Milliseconds()),
		Query:        trimmed,
	}

	s.cache.SetIfNewer(normalized, result, seq, ttl)
	return result
}

func (s *SearchService) GetLocationByID(id string) (domain_models.CampusLocation, error) {
	loc, ok := s.catalog.GetByID(id)
	if !ok {
		return domain_models.CampusLocation{}, utils.ErrLocationNotFound
	}
	return loc, nil
}

// mergeAndRank combines both sources, drops API records whose normalized
// name duplicates a curated static entry, scores, stably sorts descending
// and truncates. Static entries are appended first so ties resolve in their
// favor by insertion order.
func mergeAndRank(query string, static, api []domain_models.CampusLocation, maxResults int) []domain_models.CampusLocation {
	type candidate struct {
		loc   domain_models.CampusLocation
		score int
	}

	seenNames := make(map[string]bool, len(static))
	candidates := make([]candidate, 0, len(static)+len(api))

	for _, loc := range static {
		seenNames[normalizeName(loc.Name)] = true
		candidates = append(candidates, candidate{loc: loc, score: scoreLocation(query, loc)})
	}
	for _, loc := range api {
		if seenNames[normalizeName(loc.Name)] {
			continue
		}
		seenNames[normalizeName(loc.Name)] = true
		candidates = append(candidates, candidate{loc: loc, score: scoreLocation(query, loc)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	results := make([]domain_models.CampusLocation, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.loc)
	}
	return results
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func scoreLocation(query string, loc domain_models.CampusLocation) int {
	score := 0

	if idx := strings.Index(strings.ToLower(loc.Name), query); idx >= 0 {
		penalty := idx
		if penalty > maxPositionPenalty {
			penalty = maxPositionPenalty
		}
		score = scoreNameBase - penalty
	} else if strings.Contains(strings.ToLower(loc.Description), query) ||
		strings.Contains(strings.ToLower(loc.Category), query) {
		score = scoreDescription
	} else if keywordMatches(query, loc.Keywords) {
		score = scoreKeyword
	} else {
		// API records can be relevant without a literal substring match;
		// the provider already judged them against the query.
		score = scoreProviderOnly
	}

	if loc.Source == domain_models.SourceStatic {
		score += staticSourceBonus
	}
	return score
}

func keywordMatches(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

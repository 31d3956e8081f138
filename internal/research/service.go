package research

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/outreach-agent/internal/types"
)

// Provider returns best-effort research for a company and recruiter.
// Implementations must never fail: no results is a valid outcome.
type Provider interface {
	ResearchBoth(ctx context.Context, companyName, recruiterName string) *types.ResearchResult
}

// DefaultCacheTTL is how long a research result stays fresh.
const DefaultCacheTTL = 15 * time.Minute

// maxFacts caps the key-info, news and background lists.
const maxFacts = 3

// Service implements Provider on top of a Searcher, with an in-process
// TTL cache and singleflight dedupe so concurrent identical lookups
// share one upstream call. The cache is an optimization only; it never
// changes the never-fail contract.
type Service struct {
	search   Searcher
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
	group singleflight.Group
}

type cacheEntry struct {
	result  *types.ResearchResult
	expires time.Time
}

// NewService creates a research service. A nil searcher is allowed and
// yields empty results, so the pipeline runs without a search credential.
func NewService(search Searcher, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Service{
		search:   search,
		cacheTTL: cacheTTL,
		cache:    make(map[string]cacheEntry),
	}
}

// ResearchBoth gathers company and recruiter intelligence. It never
// returns an error: any search failure is logged and absorbed into an
// empty-but-valid result.
func (s *Service) ResearchBoth(ctx context.Context, companyName, recruiterName string) *types.ResearchResult {
	if s.search == nil {
		return types.EmptyResearchResult(companyName, recruiterName)
	}

	key := companyName + "\x00" + recruiterName

	s.mu.Lock()
	if entry, ok := s.cache[key]; ok && time.Now().Before(entry.expires) {
		s.mu.Unlock()
		return entry.result
	}
	s.mu.Unlock()

	v, _, _ := s.group.Do(key, func() (any, error) {
		result := s.lookup(ctx, companyName, recruiterName)
		s.mu.Lock()
		s.cache[key] = cacheEntry{result: result, expires: time.Now().Add(s.cacheTTL)}
		s.mu.Unlock()
		return result, nil
	})

	result, ok := v.(*types.ResearchResult)
	if !ok || result == nil {
		return types.EmptyResearchResult(companyName, recruiterName)
	}
	return result
}

// lookup performs the actual searches. Each query failure is absorbed
// independently so partial results survive.
func (s *Service) lookup(ctx context.Context, companyName, recruiterName string) *types.ResearchResult {
	ctx, cancel := context.WithTimeout(ctx, DefaultSearchTimeout)
	defer cancel()

	result := types.EmptyResearchResult(companyName, recruiterName)
	s.researchCompany(ctx, companyName, &result.Company)
	s.researchRecruiter(ctx, companyName, recruiterName, &result.Recruiter)
	result.Normalize()
	return result
}

func (s *Service) researchCompany(ctx context.Context, companyName string, out *types.CompanyResearch) {
	hits, err := s.search.WebSearch(ctx, companyName+" company", maxFacts+2)
	if err != nil {
		log.Printf("Company research failed for %q: %v", companyName, err)
	}
	for _, hit := range hits {
		if out.Website == "" && isCompanySite(hit.URL) {
			out.Website = hit.URL
		}
		if hit.Description == "" {
			continue
		}
		if out.Description == "" {
			out.Description = hit.Description
			continue
		}
		if len(out.KeyInfo) < maxFacts {
			out.KeyInfo = append(out.KeyInfo, hit.Description)
		}
	}

	news, err := s.search.NewsSearch(ctx, companyName, maxFacts)
	if err != nil {
		log.Printf("News research failed for %q: %v", companyName, err)
	}
	for _, hit := range news {
		if len(out.RecentNews) >= maxFacts {
			break
		}
		line := hit.Title
		if line == "" {
			line = hit.Description
		}
		if line != "" {
			out.RecentNews = append(out.RecentNews, line)
		}
	}
}

func (s *Service) researchRecruiter(ctx context.Context, companyName, recruiterName string, out *types.PersonResearch) {
	query := fmt.Sprintf("%q %s recruiter", recruiterName, companyName)
	hits, err := s.search.WebSearch(ctx, query, maxFacts+2)
	if err != nil {
		log.Printf("Recruiter research failed for %q: %v", recruiterName, err)
		return
	}

	for _, hit := range hits {
		if out.LinkedIn == "" && strings.Contains(hit.URL, "linkedin.com/in/") {
			out.LinkedIn = hit.URL
		}
		if out.Title == "" {
			if title := extractTitle(hit.Title); title != "" {
				out.Title = title
			}
		}
		if hit.Description != "" && len(out.Background) < maxFacts {
			out.Background = append(out.Background, hit.Description)
		}
	}
}

// isCompanySite filters out aggregator domains when picking the
// company's own website from search results.
func isCompanySite(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	aggregators := []string{
		"linkedin.com", "wikipedia.org", "glassdoor.com",
		"indeed.com", "crunchbase.com", "facebook.com",
	}
	for _, domain := range aggregators {
		if strings.Contains(rawURL, domain) {
			return false
		}
	}
	return true
}

// extractTitle pulls a job title out of a result title like
// "Jane Lee - Senior Technical Recruiter - Acme | LinkedIn".
func extractTitle(resultTitle string) string {
	parts := strings.Split(resultTitle, " - ")
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		if strings.Contains(lower, "recruit") || strings.Contains(lower, "talent") ||
			strings.Contains(lower, "hiring") || strings.Contains(lower, "people") {
			if idx := strings.Index(part, "|"); idx >= 0 {
				part = strings.TrimSpace(part[:idx])
			}
			return part
		}
	}
	return ""
}

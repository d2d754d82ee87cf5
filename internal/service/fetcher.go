package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"newsdash/config"
	"newsdash/internal/model"
)

const fetchUserAgent = "newsdash/1.0 (news aggregation dashboard)"

// FetcherService retrieves every registered feed concurrently. A source that
// times out, errors, or answers with a non-2xx status contributes zero
// entries and never aborts the batch.
type FetcherService struct {
	client  *http.Client
	parser  *ParserService
	sources []config.Source
	timeout time.Duration
}

func NewFetcherService(sources []config.Source, timeout time.Duration) *FetcherService {
	return &FetcherService{
		client:  &http.Client{},
		parser:  NewParserService(),
		sources: sources,
		timeout: timeout,
	}
}

// FetchAll fans out over all sources, waits for every fetch to settle, and
// returns the combined entries sorted by publish date descending. Entries
// without a parsable date sort last.
func (s *FetcherService) FetchAll(ctx context.Context) []model.RawEntry {
	var (
		mu      sync.Mutex
		entries []model.RawEntry
		wg      sync.WaitGroup
	)

	for _, src := range s.sources {
		wg.Add(1)
		go func(src config.Source) {
			defer wg.Done()
			fetched, err := s.fetchOne(ctx, src)
			if err != nil {
				log.Printf("[Fetcher] %s: %v", src.Name, err)
				return
			}
			mu.Lock()
			entries = append(entries, fetched...)
			mu.Unlock()
		}(src)
	}

	wg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt.After(entries[j].PublishedAt)
	})
	return entries
}

func (s *FetcherService) fetchOne(ctx context.Context, src config.Source) ([]model.RawEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	return s.parser.Parse(string(body), src), nil
}

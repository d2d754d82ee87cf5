package service

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdash/internal/model"
)

// EnricherService augments each article with an og:image URL and a
// translated display title. Both augmentations are best-effort: a miss
// degrades to an empty image or the untranslated title, and one article's
// failures never touch its siblings.
type EnricherService struct {
	client     *http.Client
	translator *TranslatorService
	timeout    time.Duration
}

func NewEnricherService(translator *TranslatorService, timeout time.Duration) *EnricherService {
	return &EnricherService{
		client:     &http.Client{},
		translator: translator,
		timeout:    timeout,
	}
}

// EnrichAll runs image extraction and title translation concurrently for
// every entry. Input order is preserved.
func (s *EnricherService) EnrichAll(ctx context.Context, entries []model.RawEntry) []model.EnrichedArticle {
	enriched := make([]model.EnrichedArticle, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry model.RawEntry) {
			defer wg.Done()
			enriched[i] = s.enrichOne(ctx, entry)
		}(i, entry)
	}
	wg.Wait()

	return enriched
}

func (s *EnricherService) enrichOne(ctx context.Context, entry model.RawEntry) model.EnrichedArticle {
	var (
		wg       sync.WaitGroup
		imageURL string
		title    = entry.Title
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		imageURL = s.extractImage(ctx, entry.URL)
	}()

	if s.translator != nil && s.translator.Enabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if translated, err := s.translator.Translate(ctx, entry.Title); err == nil {
				title = translated
			}
		}()
	}

	wg.Wait()

	return model.EnrichedArticle{
		RawEntry:     entry,
		DisplayTitle: strings.ToUpper(title),
		ImageURL:     imageURL,
	}
}

// extractImage fetches the article page and pulls the og:image meta tag.
// goquery matches the tag regardless of attribute order. Any failure yields
// an empty URL.
func (s *EnricherService) extractImage(ctx context.Context, pageURL string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	image, _ := doc.Find(`meta[property="og:image"]`).First().Attr("content")
	return strings.TrimSpace(image)
}

package service

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsdash/config"
	"newsdash/internal/model"
)

// ParserService turns one feed document into raw entries. gofeed's universal
// parser covers RSS <item> and Atom <entry> blocks with the same code path,
// CDATA unwrapping included. Anything it cannot make sense of degrades to
// zero entries; a bad document is never an error.
type ParserService struct {
	parser *gofeed.Parser
}

func NewParserService() *ParserService {
	return &ParserService{parser: gofeed.NewParser()}
}

// Parse extracts entries from the raw document. Entries missing a non-empty
// title or link are dropped silently. Unparsable dates are kept as zero
// times; the recency filter owns their fate.
func (s *ParserService) Parse(document string, source config.Source) []model.RawEntry {
	feed, err := s.parser.ParseString(document)
	if err != nil || feed == nil {
		return nil
	}

	entries := make([]model.RawEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}

		entries = append(entries, model.RawEntry{
			Title:       title,
			URL:         link,
			PublishedAt: parseItemTime(item),
			Description: desc,
			Source:      source.Name,
			Category:    source.Category,
		})
	}

	return entries
}

// parseItemTime prefers pubDate/published over updated, mirroring the tag
// priority feeds actually use.
func parseItemTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

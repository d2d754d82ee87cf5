package model

import (
	"strings"
	"testing"
)

func TestArticleID(t *testing.T) {
	a := ArticleID("https://example.com/post-1")
	b := ArticleID("https://example.com/post-2")
	if a == b {
		t.Error("different URLs must produce different IDs")
	}
	if a != ArticleID("https://example.com/post-1") {
		t.Error("same URL must produce the same ID")
	}
	if len(a) != 32 {
		t.Errorf("expected 32-char hex string, got %d chars: %s", len(a), a)
	}
}

func TestDisplaySummary(t *testing.T) {
	short := Article{Summary: "short summary"}
	if short.DisplaySummary() != "short summary" {
		t.Errorf("short summary changed: %q", short.DisplaySummary())
	}

	long := Article{Summary: strings.Repeat("x", 400)}
	got := long.DisplaySummary()
	if len([]rune(got)) != 160 {
		t.Errorf("display cap = %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("capped summary should be ellipsized: %q", got[len(got)-8:])
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsdash/config"
	"newsdash/internal/model"
)

func testTranslatorServer(t *testing.T, failFor string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/models") {
			fmt.Fprint(w, `{"data":[{"id":"gpt-4o-mini"}]}`)
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		title := req.Messages[len(req.Messages)-1].Content
		if failFor != "" && strings.Contains(title, failFor) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: "tradotto: " + title}})
		json.NewEncoder(w).Encode(resp)
	}))
}

func testTranslator(url string) *TranslatorService {
	return NewTranslatorService(config.TranslatorConfig{
		ApiURL:   url,
		ApiKey:   "test-key",
		Model:    "gpt-4o-mini",
		Language: "Italian",
	})
}

func TestEnrichExtractsImage(t *testing.T) {
	pages := map[string]string{
		"/normal":   `<html><head><meta property="og:image" content="https://cdn.example.com/a.jpg"/></head><body/></html>`,
		"/reversed": `<html><head><meta content="https://cdn.example.com/b.jpg" property="og:image"/></head><body/></html>`,
		"/none":     `<html><head><title>no image</title></head><body/></html>`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if page, ok := pages[r.URL.Path]; ok {
			fmt.Fprint(w, page)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	enricher := NewEnricherService(nil, time.Second)
	entries := []model.RawEntry{
		{Title: "a", URL: srv.URL + "/normal"},
		{Title: "b", URL: srv.URL + "/reversed"},
		{Title: "c", URL: srv.URL + "/none"},
		{Title: "d", URL: srv.URL + "/missing"},
	}

	enriched := enricher.EnrichAll(context.Background(), entries)

	if enriched[0].ImageURL != "https://cdn.example.com/a.jpg" {
		t.Errorf("og:image not extracted: %q", enriched[0].ImageURL)
	}
	if enriched[1].ImageURL != "https://cdn.example.com/b.jpg" {
		t.Errorf("reversed attribute order not handled: %q", enriched[1].ImageURL)
	}
	if enriched[2].ImageURL != "" || enriched[3].ImageURL != "" {
		t.Errorf("missing image must stay empty: %q, %q", enriched[2].ImageURL, enriched[3].ImageURL)
	}
}

func TestEnrichTranslationFallbackIsolated(t *testing.T) {
	translatorSrv := testTranslatorServer(t, "broken")
	defer translatorSrv.Close()

	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer pageSrv.Close()

	enricher := NewEnricherService(testTranslator(translatorSrv.URL), time.Second)
	entries := []model.RawEntry{
		{Title: "broken headline", URL: pageSrv.URL + "/1"},
		{Title: "good headline", URL: pageSrv.URL + "/2"},
	}

	enriched := enricher.EnrichAll(context.Background(), entries)

	// failed translation falls back to the original, still uppercased
	if enriched[0].DisplayTitle != "BROKEN HEADLINE" {
		t.Errorf("fallback title = %q, want %q", enriched[0].DisplayTitle, "BROKEN HEADLINE")
	}
	// sibling article is unaffected
	if enriched[1].DisplayTitle != "TRADOTTO: GOOD HEADLINE" {
		t.Errorf("sibling title = %q, want %q", enriched[1].DisplayTitle, "TRADOTTO: GOOD HEADLINE")
	}
}

func TestEnrichWithoutTranslator(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer pageSrv.Close()

	enricher := NewEnricherService(NewTranslatorService(config.TranslatorConfig{}), time.Second)
	enriched := enricher.EnrichAll(context.Background(), []model.RawEntry{
		{Title: "plain title", URL: pageSrv.URL},
	})

	if enriched[0].DisplayTitle != "PLAIN TITLE" {
		t.Errorf("title must still be uppercased: %q", enriched[0].DisplayTitle)
	}
}

func TestTranslatorPing(t *testing.T) {
	srv := testTranslatorServer(t, "")
	translator := testTranslator(srv.URL)
	if err := translator.Ping(context.Background()); err != nil {
		t.Errorf("reachable endpoint: %v", err)
	}

	srv.Close()
	if err := translator.Ping(context.Background()); err == nil {
		t.Error("closed endpoint should fail the ping")
	}
}

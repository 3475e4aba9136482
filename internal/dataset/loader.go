// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset fetches labeled news datasets from the remote endpoint
// and turns them into a feature frame plus a label vector.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/fakenews-lab/internal/httputil"
	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// ErrUnavailable marks failures to obtain or decode a dataset resource:
// transport errors, non-200 responses after retries, and malformed JSON.
// Callers match it with errors.Is instead of inspecting transport errors.
var ErrUnavailable = errors.New("dataset unavailable")

// Canonical resource names served by the dataset endpoint.
const (
	TrainResource = "fake_news_training"
	TestResource  = "fake_news_testing"
)

// DefaultBaseURL is the endpoint the pre-cleaned JSON datasets are
// published at.
const DefaultBaseURL = "https://raw.githubusercontent.com/pdiddy/fakenews-data/main"

// Fetch retrieves <base_url>/<name>.json, decodes the article records, and
// splits them into a feature frame and the label vector. The returned frame
// has the columns {id, news_url, title, article_text, country,
// creation_date}; the is_fake column is returned separately as labels.
//
// Transport, HTTP, and decode failures are wrapped in ErrUnavailable. A
// record missing the is_fake field is a distinct (malformed-data) error
// naming the record index.
func Fetch(ctx context.Context, client *http.Client, name string, cfg types.DatasetConfig) (*types.Frame, types.Labels, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + "/" + name + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request for %s: %w", name, err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching %s: %w: %w", name, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetching %s: %w: HTTP %d from %s", name, ErrUnavailable, resp.StatusCode, url)
	}

	var articles []types.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w: %w", name, ErrUnavailable, err)
	}

	return Split(articles)
}

// Split builds the feature frame and label vector from decoded articles.
// Row order follows record order in the document.
func Split(articles []types.Article) (*types.Frame, types.Labels, error) {
	n := len(articles)
	ids := make([]string, n)
	urls := make([]string, n)
	titles := make([]string, n)
	texts := make([]string, n)
	countries := make([]string, n)
	created := make([]float64, n)
	labels := make(types.Labels, n)

	for i, a := range articles {
		if a.IsFake == nil {
			return nil, nil, fmt.Errorf("record %d: missing is_fake label", i)
		}
		ids[i] = string(a.ID)
		urls[i] = a.NewsURL
		titles[i] = a.Title
		texts[i] = a.ArticleText
		countries[i] = a.Country
		created[i] = float64(a.CreationDate)
		if a.IsFake.Bool() {
			labels[i] = 1
		}
	}

	f := types.NewFrame(n)
	for _, col := range []struct {
		name   string
		values []string
	}{
		{"id", ids},
		{"news_url", urls},
		{"title", titles},
		{"article_text", texts},
		{"country", countries},
	} {
		if err := f.AddStringColumn(col.name, col.values); err != nil {
			return nil, nil, fmt.Errorf("building frame: %w", err)
		}
	}
	if err := f.AddFloatColumn("creation_date", created); err != nil {
		return nil, nil, fmt.Errorf("building frame: %w", err)
	}

	return f, labels, nil
}

// LoadTraining fetches the canonical training split.
func LoadTraining(ctx context.Context, client *http.Client, cfg types.DatasetConfig) (*types.Frame, types.Labels, error) {
	name := cfg.TrainResource
	if name == "" {
		name = TrainResource
	}
	return Fetch(ctx, client, name, cfg)
}

// LoadTesting fetches the canonical testing split.
func LoadTesting(ctx context.Context, client *http.Client, cfg types.DatasetConfig) (*types.Frame, types.Labels, error) {
	name := cfg.TestResource
	if name == "" {
		name = TestResource
	}
	return Fetch(ctx, client, name, cfg)
}

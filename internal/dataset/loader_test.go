// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fakenews-lab/internal/httputil"
	"github.com/pdiddy/fakenews-lab/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

const sampleBody = `[
	{"id": 1, "news_url": "https://a.example/one", "title": "One",
	 "article_text": "Plain text.", "country": "US",
	 "creation_date": 1500000000, "is_fake": false},
	{"id": "x2", "news_url": "https://b.example/two", "title": "Two",
	 "article_text": "More text.", "country": "MK",
	 "creation_date": 1600000000, "is_fake": 1},
	{"id": 3, "news_url": "https://c.example/three", "title": "Three",
	 "article_text": "Even more.", "country": "REDACTED FOR PRIVACY",
	 "creation_date": 1700000000, "is_fake": "true"}
]`

func datasetServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestFetch(t *testing.T) {
	ts := datasetServer(t, sampleBody, http.StatusOK)
	defer ts.Close()

	cfg := types.DatasetConfig{BaseURL: ts.URL}
	frame, labels, err := Fetch(context.Background(), ts.Client(), TrainResource, cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, frame.Rows())
	assert.Equal(t,
		[]string{"id", "news_url", "title", "article_text", "country", "creation_date"},
		frame.Names())

	// Labels decode from bool, number, and string forms alike.
	assert.Equal(t, types.Labels{0, 1, 1}, labels)

	// Numeric and string identifiers both land as strings.
	ids, err := frame.Strings("id")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "x2", "3"}, ids)

	created, err := frame.Floats("creation_date")
	require.NoError(t, err)
	assert.Equal(t, []float64{1500000000, 1600000000, 1700000000}, created)
}

func TestFetch_RequestPath(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cfg := types.DatasetConfig{BaseURL: ts.URL + "/datasets/"}
	_, _, err := Fetch(context.Background(), ts.Client(), "fake_news_training", cfg)
	require.NoError(t, err)
	assert.Equal(t, "/datasets/fake_news_training.json", gotPath)
}

func TestFetch_HTTPErrorIsUnavailable(t *testing.T) {
	ts := datasetServer(t, "", http.StatusNotFound)
	defer ts.Close()

	cfg := types.DatasetConfig{BaseURL: ts.URL}
	_, _, err := Fetch(context.Background(), ts.Client(), TrainResource, cfg)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_TransportErrorIsUnavailable(t *testing.T) {
	ts := datasetServer(t, "", http.StatusOK)
	ts.Close() // connection refused from here on

	cfg := types.DatasetConfig{BaseURL: ts.URL}
	_, _, err := Fetch(context.Background(), http.DefaultClient, TrainResource, cfg)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_MalformedJSONIsUnavailable(t *testing.T) {
	ts := datasetServer(t, `{"not": "an array"`, http.StatusOK)
	defer ts.Close()

	cfg := types.DatasetConfig{BaseURL: ts.URL}
	_, _, err := Fetch(context.Background(), ts.Client(), TrainResource, cfg)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_RetriesTransientErrors(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cfg := types.DatasetConfig{BaseURL: ts.URL, MaxRetries: 2}
	frame, labels, err := Fetch(context.Background(), ts.Client(), TrainResource, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, frame.Rows())
	assert.Empty(t, labels)
}

func TestSplit_MissingLabel(t *testing.T) {
	fake := types.FlexBool(true)
	articles := []types.Article{
		{ID: "1", IsFake: &fake},
		{ID: "2"}, // no label
	}
	_, _, err := Split(articles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "is_fake")
}

func TestLoadTrainingAndTesting(t *testing.T) {
	var paths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cfg := types.DatasetConfig{BaseURL: ts.URL}
	_, _, err := LoadTraining(context.Background(), ts.Client(), cfg)
	require.NoError(t, err)
	_, _, err = LoadTesting(context.Background(), ts.Client(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"/fake_news_training.json", "/fake_news_testing.json"}, paths)
}

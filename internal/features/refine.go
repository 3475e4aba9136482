// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// DefaultReferenceTime pins the creation-date scale to the current dataset
// version. Scaling against a fixed instant instead of the wall clock keeps
// feature values identical across runs.
var DefaultReferenceTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// suspiciousCountries is the registrant-country denylist.
var suspiciousCountries = map[string]bool{
	"MK": true,
	"PA": true,
}

// redactedMarker appears in the country field of privacy-shielded
// registrations.
const redactedMarker = "REDACTED"

// Step is one named column transform in the refinement pipeline.
type Step struct {
	Name  string
	Apply func(f *types.Frame) error
}

// Steps returns the canonical refinement pipeline in its fixed order:
// derived features first, then pruning, then scaling. Pruning removes the
// source columns the derived features read, so it must not move earlier.
func Steps(cfg types.RefineConfig) []Step {
	return []Step{
		{Name: "suspicious-country", Apply: suspiciousCountryStep},
		{Name: "reading-ease", Apply: readingEaseStep},
		{Name: "difficult-words", Apply: difficultWordsStep},
		{Name: "sentiment", Apply: sentimentStep},
		{Name: "prune", Apply: pruneStep},
		{Name: "scale-creation-date", Apply: scaleCreationDateStep(cfg)},
	}
}

// Refine runs the full pipeline over the frame in place. Row count and
// row order are untouched; only the column set changes. The result is a
// fully numeric frame safe to hand to either evaluator.
func Refine(f *types.Frame, cfg types.RefineConfig) error {
	for _, step := range Steps(cfg) {
		if err := step.Apply(f); err != nil {
			return fmt.Errorf("refine step %s: %w", step.Name, err)
		}
	}
	return nil
}

// suspiciousCountryStep flags registrant countries on the denylist or
// shielded behind a privacy service.
func suspiciousCountryStep(f *types.Frame) error {
	countries, err := f.Strings("country")
	if err != nil {
		return err
	}
	flags := make([]float64, len(countries))
	for i, c := range countries {
		up := strings.ToUpper(strings.TrimSpace(c))
		if suspiciousCountries[up] || strings.Contains(up, redactedMarker) {
			flags[i] = 1
		}
	}
	return f.AddFloatColumn("is_suspicious_country", flags)
}

func readingEaseStep(f *types.Frame) error {
	texts, err := f.Strings("article_text")
	if err != nil {
		return err
	}
	scores := make([]float64, len(texts))
	for i, t := range texts {
		scores[i] = ReadingEase(t)
	}
	return f.AddFloatColumn("flesch_reading_ease", scores)
}

func difficultWordsStep(f *types.Frame) error {
	texts, err := f.Strings("article_text")
	if err != nil {
		return err
	}
	ratios := make([]float64, len(texts))
	for i, t := range texts {
		ratios[i] = PercentDifficultWords(t)
	}
	return f.AddFloatColumn("percent_difficult_words", ratios)
}

func sentimentStep(f *types.Frame) error {
	texts, err := f.Strings("article_text")
	if err != nil {
		return err
	}
	polarity := make([]float64, len(texts))
	subjectivity := make([]float64, len(texts))
	for i, t := range texts {
		p, s := Analyze(t)
		polarity[i] = RescaleSentiment(p)
		subjectivity[i] = RescaleSentiment(s)
	}
	if err := f.AddFloatColumn("article_polarity", polarity); err != nil {
		return err
	}
	return f.AddFloatColumn("article_subjectivity", subjectivity)
}

// pruneStep drops the columns a numeric model cannot use, after every
// derived feature has been computed from them.
func pruneStep(f *types.Frame) error {
	return f.Drop("id", "article_text", "country", "title", "news_url")
}

func scaleCreationDateStep(cfg types.RefineConfig) func(*types.Frame) error {
	return func(f *types.Frame) error {
		ref := cfg.ReferenceTime
		if ref.IsZero() {
			ref = DefaultReferenceTime
		}
		denom := float64(ref.Unix())
		if denom <= 0 {
			return fmt.Errorf("reference time %v is not after the epoch", ref)
		}
		created, err := f.Floats("creation_date")
		if err != nil {
			return err
		}
		scaled := make([]float64, len(created))
		for i, v := range created {
			scaled[i] = v / denom
		}
		return f.SetFloatColumn("creation_date", scaled)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the fakenews-lab pipeline:
// the Article record as it arrives from the dataset endpoint, the Frame the
// feature pipeline operates on, and the configuration and report structures
// shared between the CLI and the stages.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Article is one labeled news record as published by the dataset endpoint.
type Article struct {
	// ID is the dataset-assigned article identifier. The endpoint emits it
	// as either a JSON string or a bare number.
	ID Identifier `json:"id"`

	// NewsURL is the URL the article was collected from.
	NewsURL string `json:"news_url"`

	// Title is the article headline.
	Title string `json:"title"`

	// ArticleText is the raw article body text.
	ArticleText string `json:"article_text"`

	// Country is the ISO 3166-1 alpha-2 code of the domain registrant, or
	// the literal "REDACTED" for privacy-shielded registrations.
	Country string `json:"country"`

	// CreationDate is the article creation time in seconds since the epoch.
	CreationDate int64 `json:"creation_date"`

	// IsFake is the ground-truth label. It is a pointer so a record that
	// omits the label entirely can be distinguished from a genuine false.
	IsFake *FlexBool `json:"is_fake"`
}

// Identifier decodes a JSON string or number into its textual form.
type Identifier string

// UnmarshalJSON implements json.Unmarshaler.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identifier(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = Identifier(n.String())
	return nil
}

// FlexBool decodes a JSON bool, 0/1 number, or "true"/"false"/"0"/"1"
// string into a boolean. The dataset has shipped the label in all three
// encodings over time.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*b = true
		return nil
	case "false", "0":
		*b = false
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*b = f != 0
		return nil
	}
	return fmt.Errorf("cannot interpret %s as boolean", string(data))
}

// Bool returns the underlying boolean.
func (b FlexBool) Bool() bool { return bool(b) }

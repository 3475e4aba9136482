// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package features engineers the numeric columns the models consume: the
// registrant-country flag, readability statistics, sentiment scores, and
// the creation-date rescaling. Refine composes them into one ordered
// pipeline over a frame.
package features

import (
	"strings"
	"unicode"
)

// Words splits text into lowercase word tokens. A token is a maximal run
// of letters, digits, or apostrophes containing at least one letter, so
// bare numbers and punctuation do not count as words.
func Words(text string) []string {
	var words []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		for _, r := range tok {
			if unicode.IsLetter(r) {
				words = append(words, tok)
				return
			}
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			b.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return words
}

// SentenceCount counts sentence terminators (runs of '.', '!', '?').
// Text with words but no terminator counts as a single sentence.
func SentenceCount(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inRun {
				count++
				inRun = true
			}
		default:
			inRun = false
		}
	}
	if count == 0 && len(Words(text)) > 0 {
		return 1
	}
	return count
}

// Syllables estimates the syllable count of a single word by counting
// vowel groups, discounting a silent trailing 'e'. Every word has at
// least one syllable.
func Syllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	// Silent final 'e' ("make", "note") — but keep "-le" endings ("table").
	if count > 1 && strings.HasSuffix(word, "e") &&
		!strings.HasSuffix(word, "le") && !isVowel(rune(word[len(word)-2])) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// ReadingEase computes the Flesch reading-ease score: higher means easier
// to read. Text with no countable words scores 0.
func ReadingEase(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	sentences := SentenceCount(text)
	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}
	w := float64(len(words))
	s := float64(sentences)
	return 206.835 - 1.015*(w/s) - 84.6*(float64(syllables)/w)
}

// difficultSyllables is the polysyllable criterion: a word with this many
// estimated syllables or more counts as difficult.
const difficultSyllables = 3

// PercentDifficultWords returns the share of words that count as
// difficult. Text with zero countable words returns exactly 0.
func PercentDifficultWords(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	difficult := 0
	for _, w := range words {
		if Syllables(w) >= difficultSyllables {
			difficult++
		}
	}
	return float64(difficult) / float64(len(words))
}

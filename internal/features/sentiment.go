// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

// Sentiment lexicon: opinionated words with their valence. Small by
// design — the pipeline needs a coarse polarity signal, not a full
// sentiment model.
var positiveWords = map[string]struct{}{
	"accurate": {}, "amazing": {}, "approve": {}, "awesome": {},
	"beautiful": {}, "benefit": {}, "best": {}, "better": {},
	"boost": {}, "brilliant": {}, "calm": {}, "celebrate": {},
	"confident": {}, "credible": {}, "delight": {}, "effective": {},
	"excellent": {}, "fair": {}, "fantastic": {}, "genuine": {},
	"good": {}, "great": {}, "happy": {}, "helpful": {},
	"honest": {}, "hope": {}, "improve": {}, "impressive": {},
	"innovative": {}, "love": {}, "outstanding": {}, "peaceful": {},
	"popular": {}, "positive": {}, "progress": {}, "promising": {},
	"reliable": {}, "remarkable": {}, "respected": {}, "safe": {},
	"strong": {}, "succeed": {}, "success": {}, "successful": {},
	"support": {}, "thriving": {}, "trusted": {}, "truthful": {},
	"win": {}, "wonderful": {},
}

var negativeWords = map[string]struct{}{
	"abuse": {}, "alarming": {}, "angry": {}, "attack": {},
	"awful": {}, "bad": {}, "blame": {}, "catastrophe": {},
	"cheat": {}, "collapse": {}, "corrupt": {}, "crisis": {},
	"damage": {}, "danger": {}, "dangerous": {}, "dead": {},
	"deceive": {}, "destroy": {}, "disaster": {}, "dishonest": {},
	"evil": {}, "fail": {}, "failure": {}, "fake": {},
	"fear": {}, "fraud": {}, "hate": {}, "hoax": {},
	"horrible": {}, "hurt": {}, "illegal": {}, "lie": {},
	"lose": {}, "loss": {}, "mislead": {}, "outrage": {},
	"panic": {}, "poor": {}, "scam": {}, "scandal": {},
	"shocking": {}, "terrible": {}, "threat": {}, "toxic": {},
	"ugly": {}, "violence": {}, "war": {}, "weak": {},
	"worst": {}, "wrong": {},
}

// Analyze scores a text against the lexicon. Polarity is in [-1, 1]
// (negative-leaning to positive-leaning, 0 for neutral or empty text);
// subjectivity is the share of opinionated words in [0, 1].
func Analyze(text string) (polarity, subjectivity float64) {
	words := Words(text)
	if len(words) == 0 {
		return 0, 0
	}

	pos, neg := 0, 0
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		} else if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	opinionated := pos + neg
	if opinionated > 0 {
		polarity = float64(pos-neg) / float64(opinionated)
	}
	subjectivity = float64(opinionated) / float64(len(words))
	return polarity, subjectivity
}

// RescaleSentiment maps a [-1, 1] sentiment value onto [0, 1] via
// (v+1)/2. Applied to both polarity and subjectivity for consistency;
// strictly monotonic.
func RescaleSentiment(v float64) float64 {
	return (v + 1) / 2
}

package forge

import (
	"strconv"
	"strings"
	"unicode"
)

const ellipsis = "…"

// clip collapses whitespace and truncates text to limit runes, preferring a
// word boundary in the second half of the window. Truncated text ends with
// an ellipsis.
func clip(text string, limit int) string {
	compact := strings.Join(strings.Fields(text), " ")
	runes := []rune(compact)
	if len(runes) <= limit {
		return compact
	}
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:-") + ellipsis
}

// hashtag builds a tag from the letters and digits of term. It returns ""
// when nothing usable remains.
func hashtag(term string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(term) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// appendUnique appends tags not already present until out holds limit items.
func appendUnique(out []string, limit int, tags ...string) []string {
	for _, t := range tags {
		if len(out) >= limit {
			break
		}
		if t == "" || contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// vars holds the placeholder values shared by every copy template.
type vars struct {
	terms    []string
	topic    string
	keyword  string
	audience string
	tone     Tone
	mood     Mood
	platform Platform
	tip      string
	beats    int
}

// newVars expects an interpretation that went through withDefaults.
func newVars(in Interpretation) vars {
	terms := subjectTerms(in.Keywords)
	return vars{
		terms:    terms,
		topic:    strings.Join(terms[:min(len(terms), 3)], " "),
		keyword:  terms[0],
		audience: in.Audience,
		tone:     in.Tone,
		mood:     in.Mood,
		platform: in.Platform,
		tip:      platformTips[in.Platform],
		beats:    beatCount(in.Platform),
	}
}

// fill replaces {placeholders} in tpl.
func (v vars) fill(tpl string) string {
	return strings.NewReplacer(
		"{topic}", v.topic,
		"{Topic}", titleCase(v.topic),
		"{keyword}", v.keyword,
		"{audience}", v.audience,
		"{audienceLower}", strings.ToLower(v.audience),
		"{tone}", string(v.tone),
		"{mood}", string(v.mood),
		"{platform}", string(v.platform),
		"{platformTip}", v.tip,
		"{beats}", strconv.Itoa(v.beats),
	).Replace(tpl)
}

// subjectTerms returns the keywords that did not already drive a
// classification, or all of them when every keyword did.
func subjectTerms(keywords []string) []string {
	var picked []string
	for _, k := range keywords {
		if !isSignal(k) {
			picked = append(picked, k)
		}
	}
	if len(picked) == 0 {
		return keywords
	}
	return picked
}

func isSignal(term string) bool {
	if _, ok := toneLexicon[term]; ok {
		return true
	}
	if _, ok := moodLexicon[term]; ok {
		return true
	}
	if _, ok := audienceLexicon[term]; ok {
		return true
	}
	if _, ok := contentTypeLexicon[term]; ok {
		return true
	}
	_, ok := platformLexicon[term]
	return ok
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

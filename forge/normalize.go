package forge

import (
	"sort"
	"strings"
	"unicode"
)

const (
	maxKeywords     = 8
	minTokenRunes   = 2
	fallbackKeyword = "idea"
)

// compounds are multi-word phrases folded into a single token before
// stopwords are dropped, so "gen z" survives as one term.
var compounds = []struct {
	parts  []string
	joined string
}{
	{[]string{"day", "in", "the", "life"}, "dayinthelife"},
	{[]string{"behind", "the", "scenes"}, "bts"},
	{[]string{"step", "by", "step"}, "stepbystep"},
	{[]string{"youtube", "shorts"}, "ytshorts"},
	{[]string{"instagram", "reels"}, "reels"},
	{[]string{"small", "business"}, "smallbusiness"},
	{[]string{"long", "form"}, "longform"},
	{[]string{"start", "up"}, "startup"},
	{[]string{"gen", "z"}, "genz"},
	{[]string{"how", "to"}, "howto"},
}

var stopwords = toSet(
	"a", "an", "the", "and", "or", "but", "for", "of", "to", "in", "on", "at",
	"by", "with", "from", "about", "into", "over", "under", "is", "are", "was",
	"were", "be", "been", "being", "it", "its", "this", "that", "these", "those",
	"me", "my", "we", "our", "you", "your", "they", "their", "he", "she", "his",
	"her", "them", "us", "as", "so", "if", "then", "than", "too", "very", "just",
	"really", "new", "make", "making", "made", "want", "need", "get", "some",
	"any", "all", "more", "most", "using", "use", "can", "will", "would",
	"should", "could", "do", "does", "did", "have", "has", "had", "not", "no",
	"how", "what", "why", "when", "where", "who", "which", "up", "out", "via",
	"per", "etc", "also", "like", "video", "videos", "clip", "clips", "content",
	"post", "posts",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// tokenize lowercases text, drops apostrophes, turns every other
// non-alphanumeric rune into a separator and folds known compounds.
func tokenize(text string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return joinCompounds(strings.Fields(b.String()))
}

func joinCompounds(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := false
		for _, c := range compounds {
			if hasPrefixTokens(tokens[i:], c.parts) {
				out = append(out, c.joined)
				i += len(c.parts)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}

func hasPrefixTokens(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}

// contentTokens drops stopwords, very short tokens and bare numbers.
func contentTokens(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		if len([]rune(t)) < minTokenRunes || isNumeric(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// rankByFrequency returns the distinct tokens ordered by descending count,
// ties kept in first-occurrence order.
func rankByFrequency(tokens []string) []string {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

func extractKeywords(content, raw []string) []string {
	if len(content) == 0 {
		if len(raw) == 0 {
			return []string{fallbackKeyword}
		}
		return rankByFrequency(raw)[:1]
	}
	ranked := rankByFrequency(content)
	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	return ranked
}

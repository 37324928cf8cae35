package forge

import "strings"

const summaryLimit = 140

// Interpret classifies a free-text idea. It fails only when the idea is
// empty after trimming; any other input yields a fully populated result.
func Interpret(idea string) (Interpretation, error) {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return Interpretation{}, ErrInvalidInput
	}

	raw := tokenize(trimmed)
	content := contentTokens(raw)

	return Interpretation{
		IdeaSummary: clip(trimmed, summaryLimit),
		Audience:    classify(audienceLexicon, content, defaultAudience),
		Tone:        classify(toneLexicon, content, defaultTone),
		Mood:        classify(moodLexicon, content, defaultMood),
		ContentType: classify(contentTypeLexicon, content, defaultContentType),
		Platform:    classify(platformLexicon, content, defaultPlatform),
		Keywords:    extractKeywords(content, raw),
	}, nil
}

// withDefaults fills the fields a hand-built interpretation left empty.
func (in Interpretation) withDefaults() Interpretation {
	if strings.TrimSpace(in.Audience) == "" {
		in.Audience = defaultAudience
	}
	if in.Tone == "" {
		in.Tone = defaultTone
	}
	if in.Mood == "" {
		in.Mood = defaultMood
	}
	if in.ContentType == "" {
		in.ContentType = defaultContentType
	}
	if in.Platform == "" {
		in.Platform = defaultPlatform
	}
	if len(in.Keywords) == 0 {
		in.Keywords = []string{fallbackKeyword}
	}
	return in
}

// Breakdown returns the labeled rows shown for an interpretation, in
// display order.
func (in Interpretation) Breakdown() []Field {
	return []Field{
		{Key: "ideaEssence", Label: "Idea Essence", Value: in.IdeaSummary},
		{Key: "audienceTarget", Label: "Audience Target", Value: in.Audience},
		{Key: "toneMood", Label: "Tone & Mood", Value: Capitalize(string(in.Tone)) + " · " + Capitalize(string(in.Mood))},
		{Key: "contentPlatform", Label: "Content Type & Platform", Value: Capitalize(string(in.ContentType)) + " · " + string(in.Platform)},
	}
}

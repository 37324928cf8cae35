package forge

// Tone is the voice the copy is written in.
type Tone string

const (
	ToneInspirational Tone = "inspirational"
	TonePlayful       Tone = "playful"
	ToneEducational   Tone = "educational"
	ToneAuthoritative Tone = "authoritative"
	ToneUrgent        Tone = "urgent"
	ToneHeartfelt     Tone = "heartfelt"
	ToneConfident     Tone = "confident"
)

// Mood is the emotional register of the visuals.
type Mood string

const (
	MoodEnergetic  Mood = "energetic"
	MoodCalm       Mood = "calm"
	MoodDramatic   Mood = "dramatic"
	MoodNostalgic  Mood = "nostalgic"
	MoodMysterious Mood = "mysterious"
	MoodWarm       Mood = "warm"
	MoodUplifting  Mood = "uplifting"
)

// ContentType is the format of the piece being produced.
type ContentType string

const (
	ContentProductLaunch   ContentType = "product launch"
	ContentTutorial        ContentType = "tutorial"
	ContentStory           ContentType = "story"
	ContentListicle        ContentType = "listicle"
	ContentBehindTheScenes ContentType = "behind the scenes"
	ContentTestimonial     ContentType = "testimonial"
	ContentPromo           ContentType = "promo"
	ContentExplainer       ContentType = "explainer"
)

// Platform is the publishing destination.
type Platform string

const (
	PlatformTikTok     Platform = "TikTok"
	PlatformReels      Platform = "Instagram Reels"
	PlatformShorts     Platform = "YouTube Shorts"
	PlatformYouTube    Platform = "YouTube"
	PlatformLinkedIn   Platform = "LinkedIn"
	PlatformX          Platform = "X"
	PlatformShortVideo Platform = "Short-form vertical video"
)

// Interpretation is the structured reading of an idea. Every field is populated.
type Interpretation struct {
	IdeaSummary string      `json:"ideaSummary"`
	Audience    string      `json:"audience"`
	Tone        Tone        `json:"tone"`
	Mood        Mood        `json:"mood"`
	ContentType ContentType `json:"contentType"`
	Platform    Platform    `json:"platform"`
	Keywords    []string    `json:"keywords"`
}

// Field is a keyed, labeled value. Prompt pieces and display rows use it so
// renderers can iterate them in a fixed order.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// PromptBlueprint is the slot decomposition of a video prompt plus its
// single-sentence form.
type PromptBlueprint struct {
	Pieces    []Field `json:"pieces"`
	Formatted string  `json:"formatted"`
}

// Piece returns the value stored under key.
func (b PromptBlueprint) Piece(key string) (string, bool) {
	for _, p := range b.Pieces {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// CopyPackage is the publish-ready text bundle.
type CopyPackage struct {
	Headline     string   `json:"headline"`
	Hook         string   `json:"hook"`
	Narrative    string   `json:"narrative"`
	PlatformNote string   `json:"platformNote"`
	ScriptBeats  []string `json:"scriptBeats"`
	Caption      string   `json:"caption"`
	Hashtags     []string `json:"hashtags"`
	CTA          string   `json:"cta"`
}

// Result bundles the three artifacts of one pipeline run.
type Result struct {
	Interpretation Interpretation  `json:"interpretation"`
	Prompt         PromptBlueprint `json:"prompt"`
	Copywriting    CopyPackage     `json:"copywriting"`
}

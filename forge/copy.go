package forge

import "strings"

const (
	maxHashtags    = 10
	captionLimit   = 220
	captionTags    = 5
	MinScriptBeats = 3
	MaxScriptBeats = 6
)

// copyKey addresses the template table. Empty fields act as wildcards.
type copyKey struct {
	contentType ContentType
	platform    Platform
	tone        Tone
}

type copyTemplate struct {
	headline     string
	hook         string
	narrative    string
	platformNote string
}

var copyTemplates = map[copyKey]copyTemplate{
	{}: {
		headline:     "{Topic}: The Take You Needed Today",
		hook:         "Stop scrolling: here's {topic} in under a minute.",
		narrative:    "This {mood}, {tone} look at {topic} is made for {audienceLower}. It cuts straight to what matters, shows it in motion, and leaves viewers with one clear next step.",
		platformNote: "Built for {platform}: {beats} tight beats, captions on from the first frame. {platformTip}",
	},

	{contentType: ContentProductLaunch}: {
		headline:  "Meet {Topic}: Built for What's Next",
		hook:      "Everything you thought you knew about {keyword} just changed.",
		narrative: "Launch-day energy for {audienceLower}: introduce {topic}, show the problem it removes, and let the reveal do the selling. The {mood} visuals carry the moment while the {tone} voice makes it feel inevitable.",
	},
	{contentType: ContentProductLaunch, platform: PlatformLinkedIn}: {
		headline:     "Announcing {Topic}",
		platformNote: "LinkedIn rewards substance: lead with the business outcome, keep subtitles on, and post natively with a two-line text intro.",
	},
	{contentType: ContentProductLaunch, platform: PlatformTikTok, tone: ToneInspirational}: {
		hook: "POV: you just launched the thing everyone said you couldn't build.",
	},
	{contentType: ContentProductLaunch, platform: PlatformShortVideo, tone: ToneInspirational}: {
		headline: "{Topic}: Launch Like You Mean It",
		hook:     "This is your sign to ship the idea you keep talking yourself out of.",
	},

	{contentType: ContentTutorial}: {
		headline:  "How to Master {Topic} in Minutes",
		hook:      "Give me 30 seconds and you'll never do {keyword} the hard way again.",
		narrative: "A clear, step-by-step walkthrough of {topic} for {audienceLower}. Every step is shown rather than told, so viewers can follow along and try it before the video ends.",
	},
	{contentType: ContentTutorial, platform: PlatformYouTube}: {
		platformNote: "On YouTube, add a chapter for every step, pin a comment with the full checklist, and end on a playlist card.",
	},
	{contentType: ContentTutorial, platform: PlatformYouTube, tone: ToneEducational}: {
		headline: "The Complete {Topic} Guide (Beginner to Confident)",
	},

	{contentType: ContentStory}: {
		headline:  "The {Topic} Story Nobody Tells",
		hook:      "It started with one small moment nobody noticed.",
		narrative: "A {mood} story arc about {topic}, told through one character {audienceLower} will recognize. Struggle, turn, and payoff land in order so the feeling sticks after the scroll.",
	},
	{contentType: ContentStory, platform: PlatformYouTube}: {
		platformNote: "Long-form gives the story room: hold the opening shot, let the middle breathe, and use end screens to keep viewers in the series.",
	},

	{contentType: ContentListicle}: {
		headline:  "{beats} {Topic} Moves Worth Stealing",
		hook:      "Save this: {beats} {topic} ideas that actually work.",
		narrative: "A rapid, {tone} countdown of {topic} for {audienceLower}. Each item gets one visual and one line, building to the strongest idea last.",
	},

	{contentType: ContentBehindTheScenes}: {
		headline:  "Inside {Topic}: What You Don't Usually See",
		hook:      "Here's what actually goes into {keyword}.",
		narrative: "An unpolished, {mood} look behind the curtain of {topic}. Real process, real people, and the small details {audienceLower} never get to see.",
	},

	{contentType: ContentTestimonial}: {
		headline:  "Real Results: {Topic}",
		hook:      "I didn't believe it either until {keyword} changed everything.",
		narrative: "A first-person {tone} account of life before and after {topic}. Specific details and honest reactions do the persuading for {audienceLower}.",
	},

	{contentType: ContentPromo}: {
		headline:  "{Topic}: Don't Miss This",
		hook:      "This {keyword} deal won't be around for long.",
		narrative: "A punchy, {mood} promo for {topic} aimed at {audienceLower}. Lead with the offer, show the product in action, and close on a clear deadline.",
	},
	{contentType: ContentPromo, platform: PlatformReels, tone: ToneUrgent}: {
		hook: "Last chance: {keyword} like this is gone at midnight.",
	},

	{contentType: ContentExplainer}: {
		headline: "{Topic}, Explained Simply",
		hook:     "Here's {topic} explained like you've got one minute.",
	},
}

var platformTips = map[Platform]string{
	PlatformTikTok:     "Hook within the first second, ride a trending sound, and reply to comments with follow-up clips.",
	PlatformReels:      "Keep text inside the safe zone, pick a trending audio, and design the cover frame for the grid.",
	PlatformShorts:     "Aim for a seamless loop under sixty seconds and put the payoff in the final two seconds.",
	PlatformYouTube:    "Front-load the promise, add chapters, and design the thumbnail around a single face or object.",
	PlatformLinkedIn:   "Subtitles are mandatory since most viewers watch muted, and a text intro frames the why.",
	PlatformX:          "Lead with the most striking frame, keep it under forty-five seconds, and thread the context.",
	PlatformShortVideo: "Cut vertical 9:16 masters so the same edit runs on TikTok, Reels and Shorts.",
}

var ctaByPlatform = map[Platform]string{
	PlatformTikTok:   "Follow for part two and drop your take in the comments.",
	PlatformReels:    "Save this for later and share it with someone who needs it.",
	PlatformShorts:   "Subscribe for more quick hits like this.",
	PlatformYouTube:  "Subscribe and turn on notifications so you catch the next deep dive.",
	PlatformLinkedIn: "Repost to help your network and follow for more insights.",
	PlatformX:        "Reply with your take and repost if this hit home.",
}

const defaultCTA = "Follow for more and share this with someone who would love it."

var staplesByPlatform = map[Platform][]string{
	PlatformTikTok:     {"#fyp", "#tiktok"},
	PlatformReels:      {"#reels", "#instagram"},
	PlatformShorts:     {"#shorts", "#youtubeshorts"},
	PlatformYouTube:    {"#youtube", "#creator"},
	PlatformLinkedIn:   {"#linkedin", "#leadership"},
	PlatformX:          {"#buildinpublic"},
	PlatformShortVideo: {"#shortvideo", "#contentcreator"},
}

// Write produces the copy package for an interpretation. Empty fields of a
// hand-built interpretation take the classifier defaults.
func Write(in Interpretation) CopyPackage {
	in = in.withDefaults()
	v := newVars(in)
	tpl := resolveCopy(in)
	hook := v.fill(tpl.hook)
	narrative := v.fill(tpl.narrative)
	tags := hashtagsFor(in)

	return CopyPackage{
		Headline:     v.fill(tpl.headline),
		Hook:         hook,
		Narrative:    narrative,
		PlatformNote: strings.TrimSpace(v.fill(tpl.platformNote)),
		ScriptBeats:  scriptBeats(v),
		Caption:      caption(hook, narrative, tags),
		Hashtags:     tags,
		CTA:          ctaFor(in.Platform),
	}
}

// resolveCopy fills each field from the most specific table entry that
// defines it: full key, then (contentType, platform), then contentType,
// then the global default.
func resolveCopy(in Interpretation) copyTemplate {
	keys := []copyKey{
		{in.ContentType, in.Platform, in.Tone},
		{in.ContentType, in.Platform, ""},
		{in.ContentType, "", ""},
		{},
	}
	var out copyTemplate
	for _, k := range keys {
		t, ok := copyTemplates[k]
		if !ok {
			continue
		}
		out.headline = firstNonEmpty(out.headline, t.headline)
		out.hook = firstNonEmpty(out.hook, t.hook)
		out.narrative = firstNonEmpty(out.narrative, t.narrative)
		out.platformNote = firstNonEmpty(out.platformNote, t.platformNote)
	}
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func ctaFor(p Platform) string {
	if cta, ok := ctaByPlatform[p]; ok {
		return cta
	}
	return defaultCTA
}

func hashtagsFor(in Interpretation) []string {
	tags := make([]string, 0, maxHashtags)
	for _, k := range in.Keywords {
		tags = appendUnique(tags, maxHashtags, hashtag(k))
	}
	tags = appendUnique(tags, maxHashtags, staplesByPlatform[in.Platform]...)
	tags = appendUnique(tags, maxHashtags, hashtag(string(in.ContentType)))
	if len(tags) == 0 {
		tags = appendUnique(tags, maxHashtags, hashtag(fallbackKeyword))
		tags = appendUnique(tags, maxHashtags, staplesByPlatform[defaultPlatform]...)
	}
	return tags
}

// caption is the hook and narrative clipped together, a blank line, then
// the leading hashtags.
func caption(hook, narrative string, tags []string) string {
	n := min(len(tags), captionTags)
	return clip(hook+" "+narrative, captionLimit) + "\n\n" + strings.Join(tags[:n], " ")
}

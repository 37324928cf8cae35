package forge

import "strings"

// slot is one position of the prompt sentence. Slots are composed and
// formatted in declaration order.
type slot struct {
	key     string
	lead    string
	resolve func(Interpretation, vars) string
}

var slots = []slot{
	{key: "subject", lead: "A cinematic shot of ", resolve: subjectFor},
	{key: "setting", lead: " in ", resolve: settingFor},
	{key: "cameraMovement", lead: ", shot with ", resolve: cameraFor},
	{key: "lighting", lead: ", lit by ", resolve: lightingFor},
	{key: "mood", lead: ", evoking ", resolve: moodCueFor},
	{key: "visualStyle", lead: ", styled as ", resolve: styleFor},
}

// PieceKeys lists the prompt piece keys in order.
func PieceKeys() []string {
	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = s.key
	}
	return keys
}

// Compose builds the prompt blueprint for an interpretation.
func Compose(in Interpretation) PromptBlueprint {
	in = in.withDefaults()
	v := newVars(in)
	pieces := make([]Field, 0, len(slots))
	for _, s := range slots {
		pieces = append(pieces, Field{
			Key:   s.key,
			Label: ToLabel(s.key),
			Value: s.resolve(in, v),
		})
	}
	return PromptBlueprint{Pieces: pieces, Formatted: FormatPieces(pieces)}
}

// FormatPieces joins pieces into the prompt sentence in slot order. Slots
// missing from pieces are skipped together with their connecting words.
func FormatPieces(pieces []Field) string {
	var sb strings.Builder
	for _, s := range slots {
		for _, p := range pieces {
			if p.Key != s.key {
				continue
			}
			if sb.Len() == 0 {
				sb.WriteString(slots[0].lead)
			} else {
				sb.WriteString(s.lead)
			}
			sb.WriteString(p.Value)
			break
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	sb.WriteString(".")
	return sb.String()
}

var subjectTemplates = map[ContentType]string{
	ContentProductLaunch:   "a visionary creator unveiling {topic} to a hushed, expectant crowd",
	ContentTutorial:        "a pair of expert hands demonstrating {topic} step by step",
	ContentStory:           "a determined protagonist living through a defining moment of {topic}",
	ContentListicle:        "a fast-cut montage of {topic} highlights, each framed as a numbered reveal",
	ContentBehindTheScenes: "a small crew quietly crafting {topic} between takes",
	ContentTestimonial:     "a real customer describing their {topic} transformation straight to camera",
	ContentPromo:           "a hero product shot of {topic} wrapped in bold motion graphics",
}

const defaultSubject = "a charismatic host bringing {topic} to life"

func subjectFor(in Interpretation, v vars) string {
	if tpl, ok := subjectTemplates[in.ContentType]; ok {
		return v.fill(tpl)
	}
	return v.fill(defaultSubject)
}

var settingsByAudience = map[string]string{
	"Gen Z founders and first-time builders": "a neon-lit co-working loft buzzing with late-night launch energy",
	"Gen Z digital natives":                  "a vibrant city rooftop strung with fairy lights",
	"Founders and startup builders":          "a minimalist startup office with whiteboards full of sketches",
	"Marketers and brand teams":              "a sleek creative agency war room lined with mood boards",
	"Developers and technical builders":      "a dim workspace glowing with code-filled monitors",
	"Parents and families":                   "a sunlit family kitchen in the middle of a busy morning",
	"Fitness enthusiasts":                    "an industrial gym with chalk dust hanging in the air",
	"Students and young learners":            "a bustling campus library between classes",
	"Small business owners":                  "a cozy storefront just as the sign flips to open",
	"Content creators":                       "a home studio ringed with softboxes and ring lights",
}

var settingsByContentType = map[ContentType]string{
	ContentTutorial:        "a clean, well-organized workbench",
	ContentBehindTheScenes: "a busy production set between takes",
	ContentPromo:           "a glossy seamless studio backdrop",
}

const defaultSetting = "a stylized modern space that mirrors the idea's world"

func settingFor(in Interpretation, _ vars) string {
	if s, ok := settingsByAudience[in.Audience]; ok {
		return s
	}
	if s, ok := settingsByContentType[in.ContentType]; ok {
		return s
	}
	return defaultSetting
}

var cameraByContentType = map[ContentType]string{
	ContentProductLaunch:   "a slow push-in that lands on a dramatic reveal",
	ContentTutorial:        "steady overhead angles cut with macro close-ups",
	ContentStory:           "handheld tracking shots that follow the protagonist",
	ContentListicle:        "snappy whip-pans between each numbered beat",
	ContentBehindTheScenes: "loose handheld documentary framing",
	ContentTestimonial:     "a locked-off medium close-up with a gentle rack focus",
	ContentPromo:           "dynamic orbiting moves with speed ramps",
}

const defaultCamera = "a smooth dolly that glides alongside the subject"

func cameraFor(in Interpretation, _ vars) string {
	if c, ok := cameraByContentType[in.ContentType]; ok {
		return c
	}
	return defaultCamera
}

var lightingByMood = map[Mood]string{
	MoodEnergetic:  "high-contrast neon accents and pulsing practicals",
	MoodCalm:       "soft diffused daylight with a gentle haze",
	MoodDramatic:   "low-key chiaroscuro from a single hard key light",
	MoodNostalgic:  "warm tungsten glow with subtle film halation",
	MoodMysterious: "moody blue shadows pierced by thin shafts of light",
	MoodWarm:       "golden-hour sunlight and amber practicals",
}

const defaultLighting = "bright, airy natural light with a soft bloom"

func lightingFor(in Interpretation, _ vars) string {
	if l, ok := lightingByMood[in.Mood]; ok {
		return l
	}
	return defaultLighting
}

var moodCues = map[Mood]string{
	MoodEnergetic:  "a pulse-raising rush of momentum",
	MoodCalm:       "a grounded sense of calm and clarity",
	MoodDramatic:   "high-stakes tension that builds to a release",
	MoodNostalgic:  "a bittersweet, nostalgic ache",
	MoodMysterious: "an intriguing air of mystery",
	MoodWarm:       "an intimate, welcoming warmth",
}

const defaultMoodCue = "a hopeful, uplifting lift"

func moodCueFor(in Interpretation, _ vars) string {
	cue, ok := moodCues[in.Mood]
	if !ok {
		cue = defaultMoodCue
	}
	return cue + " carried by " + withArticle(string(in.Tone)) + " voice"
}

var styleByPlatform = map[Platform]string{
	PlatformTikTok:   "a vertical 9:16 edit with punchy jump cuts and bold on-screen captions",
	PlatformReels:    "a vertical 9:16 edit with a polished color grade and beat-synced cuts",
	PlatformShorts:   "a loopable vertical 9:16 edit under sixty seconds with crisp text overlays",
	PlatformYouTube:  "a widescreen 16:9 film with a filmic grade and chapter-ready pacing",
	PlatformLinkedIn: "a square 1:1 piece with a clean corporate-cinematic grade and subtitles first",
	PlatformX:        "a 16:9 clip with a scroll-stopping first frame and burned-in subtitles",
}

const defaultStyle = "a vertical 9:16 edit with a crisp cinematic grade and fast-paced cuts"

func styleFor(in Interpretation, _ vars) string {
	if s, ok := styleByPlatform[in.Platform]; ok {
		return s
	}
	return defaultStyle
}

func withArticle(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + word
	}
	return "a " + word
}

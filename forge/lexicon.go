package forge

const (
	defaultTone        = ToneConfident
	defaultMood        = MoodUplifting
	defaultContentType = ContentExplainer
	defaultPlatform    = PlatformShortVideo
	defaultAudience    = "Ambitious creators and curious scrollers"
)

type entry[T any] struct {
	value T
	terms []string
}

// buildLexicon inverts entries into a term lookup. A term listed under
// several values keeps the first.
func buildLexicon[T any](entries []entry[T]) map[string]T {
	lex := make(map[string]T)
	for _, e := range entries {
		for _, term := range e.terms {
			if _, ok := lex[term]; !ok {
				lex[term] = e.value
			}
		}
	}
	return lex
}

// classify scans tokens in order and returns the value of the first token
// with a lexicon entry. Two-token phrases are tried before the single token
// at each position.
func classify[T any](lex map[string]T, tokens []string, fallback T) T {
	for i, t := range tokens {
		if i+1 < len(tokens) {
			if v, ok := lex[t+" "+tokens[i+1]]; ok {
				return v
			}
		}
		if v, ok := lex[t]; ok {
			return v
		}
	}
	return fallback
}

var toneLexicon = buildLexicon([]entry[Tone]{
	{ToneInspirational, []string{"motivating", "motivational", "motivate", "motivation", "inspire", "inspiring", "inspirational", "empower", "empowering", "dream", "dreams", "hustle", "ambition", "ambitious"}},
	{TonePlayful, []string{"funny", "fun", "playful", "hilarious", "meme", "memes", "silly", "comedy", "quirky", "witty", "prank"}},
	{ToneEducational, []string{"learn", "learning", "teach", "teaching", "explain", "explained", "educational", "guide", "howto", "lesson", "lessons", "tips", "tutorial"}},
	{ToneAuthoritative, []string{"expert", "experts", "proven", "data", "research", "insights", "industry", "professional", "b2b", "enterprise", "strategy"}},
	{ToneUrgent, []string{"urgent", "now", "limited", "hurry", "deadline", "last", "flash", "today", "countdown"}},
	{ToneHeartfelt, []string{"heartfelt", "emotional", "touching", "love", "family", "grateful", "gratitude", "tribute", "memories", "thank"}},
	{ToneConfident, []string{"confident", "bold", "fearless"}},
})

var moodLexicon = buildLexicon([]entry[Mood]{
	{MoodEnergetic, []string{"energetic", "energy", "hype", "fast", "workout", "party", "dance", "upbeat", "explosive", "adrenaline", "sport", "sports"}},
	{MoodCalm, []string{"calm", "relaxing", "relax", "peaceful", "mindful", "mindfulness", "meditation", "serene", "slow", "asmr", "zen", "wellness", "sleep", "yoga"}},
	{MoodDramatic, []string{"dramatic", "epic", "cinematic", "intense", "powerful", "dark", "thriller", "storm"}},
	{MoodNostalgic, []string{"nostalgic", "nostalgia", "retro", "vintage", "throwback", "childhood", "90s", "80s"}},
	{MoodMysterious, []string{"mystery", "mysterious", "secret", "secrets", "hidden", "unknown", "reveal", "night"}},
	{MoodWarm, []string{"warm", "cozy", "friendly", "community", "home", "together", "kind", "kindness"}},
	{MoodUplifting, []string{"uplifting", "hopeful", "hope", "joy", "joyful", "happy", "bright", "positive"}},
})

var audienceLexicon = buildLexicon([]entry[string]{
	{"Gen Z founders and first-time builders", []string{"genz founders", "genz founder", "genz entrepreneurs", "genz startup"}},
	{"Gen Z digital natives", []string{"genz", "zoomers", "teens", "teenagers"}},
	{"Founders and startup builders", []string{"founders", "founder", "startup", "startups", "entrepreneur", "entrepreneurs", "indie", "solopreneurs", "builders"}},
	{"Marketers and brand teams", []string{"marketers", "marketing", "brands", "brand", "agency", "agencies"}},
	{"Developers and technical builders", []string{"developers", "developer", "devs", "engineers", "programmers", "coders", "coding"}},
	{"Parents and families", []string{"parents", "moms", "dads", "families", "kids", "parenting"}},
	{"Fitness enthusiasts", []string{"fitness", "gym", "athletes", "runners", "lifters"}},
	{"Students and young learners", []string{"students", "student", "college", "graduates", "university"}},
	{"Small business owners", []string{"smallbusiness", "shop", "shops", "local", "ecommerce", "sellers", "retailers"}},
	{"Content creators", []string{"creators", "creator", "influencers", "youtubers", "streamers"}},
})

var contentTypeLexicon = buildLexicon([]entry[ContentType]{
	{ContentProductLaunch, []string{"launch", "launching", "launches", "unveil", "unveiling", "release", "releasing", "introducing", "debut", "announcement", "announce"}},
	{ContentTutorial, []string{"tutorial", "howto", "stepbystep", "walkthrough", "guide", "diy", "recipe", "setup"}},
	{ContentStory, []string{"story", "stories", "journey", "dayinthelife", "vlog", "documentary", "origin", "storytime"}},
	{ContentListicle, []string{"top", "tips", "ways", "reasons", "hacks", "mistakes", "list", "ranking"}},
	{ContentBehindTheScenes, []string{"bts", "backstage", "studio", "workshop", "process"}},
	{ContentTestimonial, []string{"review", "reviews", "testimonial", "testimonials", "customer", "customers", "results", "transformation"}},
	{ContentPromo, []string{"sale", "discount", "offer", "promo", "deal", "deals", "giveaway", "coupon"}},
	{ContentExplainer, []string{"explainer", "explained", "breakdown", "overview"}},
})

var platformLexicon = buildLexicon([]entry[Platform]{
	{PlatformTikTok, []string{"tiktok", "tiktoks", "fyp"}},
	{PlatformReels, []string{"reel", "reels", "instagram", "insta", "ig"}},
	{PlatformShorts, []string{"ytshorts", "shorts"}},
	{PlatformYouTube, []string{"youtube", "longform"}},
	{PlatformLinkedIn, []string{"linkedin", "b2b", "recruiters"}},
	{PlatformX, []string{"twitter", "tweet", "tweets", "thread"}},
})

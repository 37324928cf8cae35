package forge

import "fmt"

type stage struct {
	label string
	text  string
}

var (
	stageHook    = stage{"Hook", "Open on a close-up of {keyword} with {mood} framing and state the promise in one line."}
	stageContext = stage{"Context", "Set the scene: why {topic} matters to {audienceLower} right now."}
	stageTension = stage{"Tension", "Show the friction of life without {keyword}, the moment everyone recognizes."}
	stageProof   = stage{"Proof", "Back it up with a quick demo, stat or real reaction featuring {keyword}."}
	stagePayoff  = stage{"Payoff", "Deliver the payoff: the {mood} shift that {topic} makes possible."}
	stageCTA     = stage{"CTA setup", "Hold the final frame on {keyword} and tee up the call to action."}
)

// arcs thins the full narrative arc to each supported beat count, always
// opening on the hook and closing on the CTA setup.
var arcs = map[int][]stage{
	3: {stageHook, stagePayoff, stageCTA},
	4: {stageHook, stageContext, stagePayoff, stageCTA},
	5: {stageHook, stageContext, stageProof, stagePayoff, stageCTA},
	6: {stageHook, stageContext, stageTension, stageProof, stagePayoff, stageCTA},
}

var beatsByPlatform = map[Platform]int{
	PlatformX:        3,
	PlatformLinkedIn: 5,
	PlatformYouTube:  6,
}

const defaultBeats = 4

// runtimeByBeats is the target clip length in seconds for each beat count.
// Beats split it into equal whole-second windows.
var runtimeByBeats = map[int]int{
	3: 15,
	4: 30,
	5: 45,
	6: 60,
}

func beatCount(p Platform) int {
	if n, ok := beatsByPlatform[p]; ok {
		return n
	}
	return defaultBeats
}

// scriptBeats renders the arc for the platform as "0-7s Hook: ..." lines.
// Subject terms rotate through the beats so each one leans on a different
// term.
func scriptBeats(v vars) []string {
	arc := arcs[v.beats]
	total := runtimeByBeats[v.beats]
	beats := make([]string, len(arc))
	for i, st := range arc {
		bv := v
		bv.keyword = v.terms[i%len(v.terms)]
		start, end := i*total/len(arc), (i+1)*total/len(arc)
		beats[i] = fmt.Sprintf("%d-%ds %s: %s", start, end, st.label, bv.fill(st.text))
	}
	return beats
}

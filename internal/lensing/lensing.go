// Package lensing tags memories with affective lenses derived from the
// current state and style, so later retrieval can prefer memories that
// resonate with how the agent feels now. All functions are pure.
package lensing

import (
	"strings"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// Lenses maps a lens tag to its weight in [0, 1].
type Lenses map[string]float64

// #region tables

// memoryPattern reweights lens groups for one memory type.
type memoryPattern struct {
	ValenceWeight float64
	ArousalWeight float64
	StyleWeight   float64
	LensTags      []string
}

var memoryPatterns = map[string]memoryPattern{
	"interaction": {
		ValenceWeight: 0.8, ArousalWeight: 0.6, StyleWeight: 0.9,
		LensTags: []string{"social", "communication"},
	},
	"achievement": {
		ValenceWeight: 0.9, ArousalWeight: 0.7, StyleWeight: 0.5,
		LensTags: []string{"success", "accomplishment"},
	},
	"learning": {
		ValenceWeight: 0.6, ArousalWeight: 0.5, StyleWeight: 0.4,
		LensTags: []string{"education", "growth"},
	},
	"emotional": {
		ValenceWeight: 1.0, ArousalWeight: 0.8, StyleWeight: 0.3,
		LensTags: []string{"emotional", "feeling"},
	},
	"creative": {
		ValenceWeight: 0.7, ArousalWeight: 0.6, StyleWeight: 0.8,
		LensTags: []string{"creative", "artistic"},
	},
	"problem_solving": {
		ValenceWeight: 0.5, ArousalWeight: 0.7, StyleWeight: 0.6,
		LensTags: []string{"analytical", "logical"},
	},
}

// Lens groups the memory-type reweighting applies to.
var valenceLensNames = []string{"positive", "negative", "neutral", "joyful", "sad"}
var arousalLensNames = []string{"excited", "calm", "anxious", "engaged", "energetic"}
var styleLensNames = []string{"warm", "formal", "humorous", "serious", "assertive", "tentative"}

// contentCues adds lens pairs when any cue word appears in the memory text.
var contentCues = []struct {
	Words  []string
	Lenses [2]string
}{
	{[]string{"love", "care", "kind", "gentle"}, [2]string{"caring", "compassionate"}},
	{[]string{"think", "analyze", "logic", "reason"}, [2]string{"analytical", "logical"}},
	{[]string{"create", "imagine", "art", "design"}, [2]string{"creative", "imaginative"}},
	{[]string{"help", "support", "assist", "guide"}, [2]string{"helpful", "supportive"}},
	{[]string{"learn", "study", "understand", "knowledge"}, [2]string{"educational", "intellectual"}},
}

// #endregion tables

// #region apply

// ApplyLensing derives the lens set for the current moment from state,
// style, and situational context.
func ApplyLensing(state model.AffectiveState, style model.StyleProfile, evctx model.EventContext) Lenses {
	lenses := Lenses{}
	valenceLenses(lenses, state)
	arousalLenses(lenses, state)
	fatigueLenses(lenses, state)
	styleLenses(lenses, style)
	contextLenses(lenses, evctx)
	return normalize(lenses)
}

// TagMemory produces the lens set to store alongside a memory. Unknown
// memory types fall back to the interaction pattern.
func TagMemory(content, memoryType string, state model.AffectiveState, style model.StyleProfile) Lenses {
	pattern, ok := memoryPatterns[memoryType]
	if !ok {
		pattern = memoryPatterns["interaction"]
	}

	lenses := ApplyLensing(state, style, model.EventContext{})
	reweight(lenses, valenceLensNames, pattern.ValenceWeight)
	reweight(lenses, arousalLensNames, pattern.ArousalWeight)
	reweight(lenses, styleLensNames, pattern.StyleWeight)
	for _, tag := range pattern.LensTags {
		lenses[tag] = 0.6
	}
	contentLenses(lenses, content)
	return normalize(lenses)
}

func valenceLenses(lenses Lenses, state model.AffectiveState) {
	switch {
	case state.Valence > 0.5:
		lenses["positive"] = 0.8
		if state.Valence > 0.8 {
			lenses["joyful"] = 0.9
			lenses["optimistic"] = 0.8
		}
	case state.Valence < -0.5:
		lenses["negative"] = 0.6
		if state.Valence < -0.8 {
			lenses["sad"] = 0.9
			lenses["pessimistic"] = 0.8
		}
	default:
		lenses["neutral"] = 0.4
		lenses["balanced"] = 0.5
	}
}

func arousalLenses(lenses Lenses, state model.AffectiveState) {
	switch {
	case state.Arousal > 0.7:
		lenses["excited"] = 0.9
		lenses["energetic"] = 0.8
	case state.Arousal > 0.4:
		lenses["engaged"] = 0.6
		lenses["active"] = 0.5
	case state.Arousal < 0.3:
		lenses["calm"] = 0.3
		lenses["peaceful"] = 0.4
	}

	// Anxiety shows up as high arousal with negative valence.
	if state.Arousal > 0.6 && state.Valence < -0.3 {
		lenses["anxious"] = 0.7
		lenses["stressed"] = 0.7
	}
}

func fatigueLenses(lenses Lenses, state model.AffectiveState) {
	switch {
	case state.Fatigue < 0.3:
		lenses["energetic"] = 0.8
		lenses["focused"] = 0.9
	case state.Fatigue > 0.7:
		lenses["tired"] = 0.4
		lenses["distracted"] = 0.3
	default:
		lenses["moderate_energy"] = 0.5
	}
}

func styleLenses(lenses Lenses, style model.StyleProfile) {
	switch {
	case style.Tone.Warmth > 0.7:
		lenses["warm"] = 0.7
		lenses["friendly"] = 0.8
	case style.Tone.Warmth < 0.3:
		lenses["cool"] = 0.6
		lenses["distant"] = 0.5
	}

	switch {
	case style.Tone.Formality > 0.7:
		lenses["formal"] = 0.6
		lenses["professional"] = 0.8
	case style.Tone.Formality < 0.3:
		lenses["casual"] = 0.7
		lenses["relaxed"] = 0.6
	}

	switch {
	case style.Tone.Humor > 0.7:
		lenses["humorous"] = 0.8
		lenses["playful"] = 0.8
	case style.Tone.Humor < 0.3:
		lenses["serious"] = 0.5
		lenses["grave"] = 0.6
	}

	switch {
	case style.Stance.Assertiveness > 0.7:
		lenses["assertive"] = 0.7
		lenses["confident"] = 0.8
	case style.Stance.Assertiveness < 0.3:
		lenses["tentative"] = 0.4
		lenses["uncertain"] = 0.6
	}
}

func contextLenses(lenses Lenses, evctx model.EventContext) {
	if evctx.SocialContext {
		lenses["social"] = 0.8
		lenses["interpersonal"] = 0.7
	}
	if evctx.WorkContext {
		lenses["professional"] = 0.8
		lenses["productive"] = 0.7
	}
	if evctx.LearningContext {
		lenses["educational"] = 0.8
		lenses["growth"] = 0.7
	}
	if evctx.CreativeContext {
		lenses["creative"] = 0.8
		lenses["artistic"] = 0.7
	}
	if evctx.EmotionalState != "" && evctx.EmotionalState != "neutral" {
		lenses[evctx.EmotionalState] = 0.8
		lenses["emotional"] = 0.7
	}
}

func contentLenses(lenses Lenses, content string) {
	lower := strings.ToLower(content)
	for _, cue := range contentCues {
		for _, word := range cue.Words {
			if strings.Contains(lower, word) {
				lenses[cue.Lenses[0]] = 0.8
				lenses[cue.Lenses[1]] = 0.7
				break
			}
		}
	}
}

func reweight(lenses Lenses, names []string, weight float64) {
	for _, name := range names {
		if _, ok := lenses[name]; ok {
			lenses[name] *= weight
		}
	}
}

// normalize rescales so the heaviest lens sits at 0.9, then drops
// lenses below 0.1.
func normalize(lenses Lenses) Lenses {
	if len(lenses) == 0 {
		return Lenses{}
	}

	maxWeight := 0.0
	for _, w := range lenses {
		if w > maxWeight {
			maxWeight = w
		}
	}

	factor := 1.0
	if maxWeight > 0.9 {
		factor = 0.9 / maxWeight
	}

	out := Lenses{}
	for name, w := range lenses {
		w *= factor
		if w >= 0.1 {
			out[name] = w
		}
	}
	return out
}

// #endregion apply

// #region scoring

// recencyDecay stands in for per-memory age until memories carry
// timestamps through this path.
const recencyDecay = 0.8

// InfluenceScore rates how strongly a memory's lenses should color the
// current state, by checking whether the memory's dominant lenses
// resonate with where valence, arousal, and fatigue sit right now.
func InfluenceScore(memoryLenses Lenses, state model.AffectiveState) float64 {
	if len(memoryLenses) == 0 {
		return 0.0
	}

	var scores []float64
	if w, ok := memoryLenses["positive"]; ok && state.Valence > 0 {
		scores = append(scores, w*state.Valence)
	} else if w, ok := memoryLenses["negative"]; ok && state.Valence < 0 {
		scores = append(scores, w*-state.Valence)
	}
	if w, ok := memoryLenses["excited"]; ok && state.Arousal > 0.6 {
		scores = append(scores, w*state.Arousal)
	} else if w, ok := memoryLenses["calm"]; ok && state.Arousal < 0.4 {
		scores = append(scores, w*(1.0-state.Arousal))
	}
	if w, ok := memoryLenses["energetic"]; ok && state.Fatigue < 0.3 {
		scores = append(scores, w*(1.0-state.Fatigue))
	} else if w, ok := memoryLenses["tired"]; ok && state.Fatigue > 0.7 {
		scores = append(scores, w*state.Fatigue)
	}

	avg := 0.3
	if len(scores) > 0 {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		avg = sum / float64(len(scores))
	}

	return clamp(avg*recencyDecay, 0, 1)
}

// RetrievalPriority scores a memory against the query's lens set. The
// overlap term rewards matching lenses and a small richness boost
// favors memories tagged with more context.
func RetrievalPriority(memoryLenses, queryLenses Lenses) float64 {
	if len(memoryLenses) == 0 || len(queryLenses) == 0 {
		return 0.0
	}

	overlap := 0.0
	count := 0
	for name, queryWeight := range queryLenses {
		if memoryWeight, ok := memoryLenses[name]; ok {
			overlap += queryWeight * memoryWeight
			count++
		}
	}
	if count > 0 {
		overlap /= float64(count)
	}

	richness := float64(len(memoryLenses)) * 0.02
	if richness > 0.2 {
		richness = 0.2
	}

	return clamp(overlap+richness, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion scoring

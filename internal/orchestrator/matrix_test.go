package orchestrator

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

func newTestMatrix(t *testing.T) *Matrix {
	t.Helper()
	m, err := New(model.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func friendChatEvent(et model.EventType, intensity float64) model.EventUpdate {
	return model.EventUpdate{
		EventType: et,
		Intensity: intensity,
		Audience:  &model.AudienceContext{Name: "sam", Type: model.AudienceFriend},
		Channel:   &model.ChannelContext{Type: model.ChannelChat, IsPrivate: true},
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

// recordingSink captures traces; failingSink always errors.
type recordingSink struct {
	mu     sync.Mutex
	traces []trace.StyleTrace
}

func (s *recordingSink) Record(t trace.StyleTrace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traces = append(s.traces, t)
	return nil
}

type failingSink struct{}

func (failingSink) Record(trace.StyleTrace) error { return errors.New("sink down") }

func TestNewInitializesBaseline(t *testing.T) {
	m := newTestMatrix(t)

	state := m.State()
	if state.Valence != 0.5 || state.Arousal != 0.4 || state.Fatigue != 0 {
		t.Errorf("baseline state = %+v", state)
	}
	if !model.HasTag(state.Tags, "baseline") {
		t.Errorf("baseline tags = %v", state.Tags)
	}

	profile := m.Style()
	if math.Abs(profile.Tone.Warmth-0.425) > 1e-9 {
		t.Errorf("baseline warmth = %f, want 0.425", profile.Tone.Warmth)
	}
	if err := profile.Validate(); err != nil {
		t.Errorf("baseline style invalid: %v", err)
	}

	caps := m.Boundaries()
	if caps.MaxFlirtation != 0.5 || caps.MaxHumor != 0.8 {
		t.Errorf("baseline caps = %+v", caps)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := model.DefaultConfig()
	config.AffectDecayRate = 1.5
	if _, err := New(config, nil); err == nil {
		t.Fatal("out-of-range decay rate should fail")
	}
}

func TestApplyEventFullPipeline(t *testing.T) {
	m := newTestMatrix(t)

	outcome, err := m.ApplyEvent(friendChatEvent(model.EventPositiveInteraction, 0.8))
	if err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	if math.Abs(outcome.State.Valence-0.7232) > 1e-9 {
		t.Errorf("valence = %f, want 0.7232", outcome.State.Valence)
	}
	if math.Abs(outcome.Style.Tone.Warmth-0.596024) > 1e-9 {
		t.Errorf("warmth = %f, want 0.596024", outcome.Style.Tone.Warmth)
	}
	// business-hours floor wins over the friendly blend
	if outcome.Style.Tone.Formality != 0.5 {
		t.Errorf("formality = %f, want 0.5", outcome.Style.Tone.Formality)
	}
	if outcome.DriftDetected {
		t.Errorf("drift %f should stay under threshold", outcome.DriftMagnitude)
	}

	caps := outcome.Boundaries
	if caps.MaxFlirtation != 0.3 || caps.MaxHumor != 0.7 || caps.MaxCandor != 0.9 || caps.MinFormality != 0.5 {
		t.Errorf("caps = %+v", caps)
	}

	// the matrix committed the same triad the outcome reports
	if got := m.State(); got.Valence != outcome.State.Valence {
		t.Errorf("committed valence = %f, want %f", got.Valence, outcome.State.Valence)
	}
	if got := m.Decoding(); got != outcome.Style.Decoding {
		t.Errorf("committed decoding = %+v, want %+v", got, outcome.Style.Decoding)
	}
}

func TestApplyEventRejectsInvalid(t *testing.T) {
	m := newTestMatrix(t)
	before := m.State()

	bad := friendChatEvent(model.EventStress, 0.5)
	bad.Audience = &model.AudienceContext{Type: "alien"}

	if _, err := m.ApplyEvent(bad); !model.IsValidation(err) {
		t.Fatalf("unknown audience should fail validation, got %v", err)
	}

	after := m.State()
	if after.Valence != before.Valence || after.Arousal != before.Arousal {
		t.Errorf("rejected event mutated the state: %+v -> %+v", before, after)
	}
}

func TestApplyEventRecordsTrace(t *testing.T) {
	sink := &recordingSink{}
	m, err := New(model.DefaultConfig(), sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := m.ApplyEvent(friendChatEvent(model.EventAchievement, 0.6)); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	if len(sink.traces) != 1 {
		t.Fatalf("got %d traces, want 1", len(sink.traces))
	}
	tr := sink.traces[0]
	if tr.EventType != model.EventAchievement || tr.Intensity != 0.6 {
		t.Errorf("trace = %+v", tr)
	}
	if _, ok := tr.StyleDelta["warmth"]; !ok {
		t.Errorf("style delta missing warmth: %v", tr.StyleDelta)
	}
}

func TestApplyEventSurvivesSinkFailure(t *testing.T) {
	m, err := New(model.DefaultConfig(), failingSink{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := m.ApplyEvent(friendChatEvent(model.EventSocial, 0.5)); err != nil {
		t.Errorf("sink failure must not fail the pipeline: %v", err)
	}
}

func TestApplyEventConcurrent(t *testing.T) {
	m := newTestMatrix(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			et := model.EventTypes[i%len(model.EventTypes)]
			if _, err := m.ApplyEvent(friendChatEvent(et, 0.5)); err != nil {
				t.Errorf("ApplyEvent: %v", err)
			}
		}(i)
	}
	wg.Wait()

	state := m.State()
	if err := state.Validate(); err != nil {
		t.Errorf("state out of range after concurrent updates: %v", err)
	}
	if err := m.Style().Validate(); err != nil {
		t.Errorf("style out of range after concurrent updates: %v", err)
	}
}

func TestTraitsConcurrentWithImport(t *testing.T) {
	m := newTestMatrix(t)

	snap := m.ExportSnapshot()
	snap.Traits.Curiosity = 0.9

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.ImportSnapshot(snap); err != nil {
				t.Errorf("ImportSnapshot: %v", err)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			traits := m.Traits()
			if traits.Curiosity != 0.5 && traits.Curiosity != 0.9 {
				t.Errorf("torn trait read: %+v", traits)
			}
		}()
	}
	wg.Wait()

	if got := m.Traits().Curiosity; got != 0.9 {
		t.Errorf("curiosity = %f, want 0.9 after import", got)
	}
}

func TestHistoryBounded(t *testing.T) {
	config := model.DefaultConfig()
	config.HistoryLimit = 5
	m, err := New(config, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := m.ApplyEvent(friendChatEvent(model.EventSocial, 0.3)); err != nil {
			t.Fatalf("ApplyEvent: %v", err)
		}
	}
	if got := len(m.History()); got != 5 {
		t.Errorf("history length = %d, want 5", got)
	}
}

func TestResetToBaseline(t *testing.T) {
	m := newTestMatrix(t)

	if _, err := m.ApplyEvent(friendChatEvent(model.EventStress, 0.9)); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	profile := m.ResetToBaseline()
	if math.Abs(profile.Tone.Warmth-0.425) > 1e-9 {
		t.Errorf("reset warmth = %f, want 0.425", profile.Tone.Warmth)
	}

	state := m.State()
	if state.Valence != 0.5 || state.Arousal != 0.4 || state.Fatigue != 0 {
		t.Errorf("reset state = %+v", state)
	}
	if !model.HasTag(state.Tags, "baseline") {
		t.Errorf("reset tags = %v", state.Tags)
	}

	caps := m.Boundaries()
	if caps.MaxFlirtation != 0.5 {
		t.Errorf("reset caps = %+v", caps)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := newTestMatrix(t)
	if _, err := m.ApplyEvent(friendChatEvent(model.EventCreativity, 0.7)); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	snap := m.ExportSnapshot()

	restored := newTestMatrix(t)
	if err := restored.ImportSnapshot(snap); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	if !reflect.DeepEqual(restored.State(), m.State()) {
		t.Errorf("state = %+v, want %+v", restored.State(), m.State())
	}
	if restored.Style() != m.Style() {
		t.Errorf("style = %+v, want %+v", restored.Style(), m.Style())
	}
	if !reflect.DeepEqual(restored.Boundaries(), m.Boundaries()) {
		t.Errorf("caps = %+v, want %+v", restored.Boundaries(), m.Boundaries())
	}
	if restored.Traits() != m.Traits() {
		t.Errorf("traits = %+v, want %+v", restored.Traits(), m.Traits())
	}
}

func TestImportSnapshotRejectsInvalid(t *testing.T) {
	m := newTestMatrix(t)
	before := m.State()

	snap := m.ExportSnapshot()
	snap.State.Valence = 9

	err := m.ImportSnapshot(snap)
	if err == nil {
		t.Fatal("out-of-range snapshot should be rejected")
	}
	var ise *model.InvalidSnapshotError
	if !errors.As(err, &ise) {
		t.Errorf("error %v should wrap InvalidSnapshotError", err)
	}
	if got := m.State(); got.Valence != before.Valence {
		t.Errorf("failed import mutated the state: %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	m := newTestMatrix(t)
	summary := m.Summarize()

	if summary.Traits != model.DefaultTraits() {
		t.Errorf("traits = %+v", summary.Traits)
	}
	if summary.CurrentMood.Valence != 0.5 {
		t.Errorf("mood valence = %f, want 0.5", summary.CurrentMood.Valence)
	}
	if math.Abs(summary.CommunicationStyle.Warmth-0.425) > 1e-9 {
		t.Errorf("summary warmth = %f, want 0.425", summary.CommunicationStyle.Warmth)
	}
	if summary.Stability < 0.99 {
		t.Errorf("baseline stability = %f, want ~1", summary.Stability)
	}
}

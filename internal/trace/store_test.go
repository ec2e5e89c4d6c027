package trace

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

func testStore(t *testing.T, config StoreConfig) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "trace_test.db"), config)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleTrace(et model.EventType, styleDelta map[string]float64) StyleTrace {
	return StyleTrace{
		EventType: et,
		Intensity: 0.8,
		State: model.AffectiveState{
			Timestamp: time.Now().UTC(),
			Valence:   0.5, Arousal: 0.4, Fatigue: 0, Decay: 0.92,
		},
		StyleDelta:    styleDelta,
		DecodingDelta: map[string]float64{"temp": 0.05},
		Boundaries:    model.DefaultBoundaryCaps(),
		Rationale:     "event " + string(et) + " at intensity 0.80",
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := testStore(t, DefaultStoreConfig())

	if err := store.Record(sampleTrace(model.EventAchievement, map[string]float64{"warmth": 0.05})); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(sampleTrace(model.EventStress, map[string]float64{"warmth": -0.03})); err != nil {
		t.Fatalf("Record: %v", err)
	}

	traces, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(traces))
	}
	got := traces[0]
	if got.ID == "" {
		t.Error("trace ID should be assigned on record")
	}
	if got.StyleDelta["warmth"] != -0.03 {
		t.Errorf("newest trace warmth delta = %f, want -0.03", got.StyleDelta["warmth"])
	}
	if got.State.Valence != 0.5 {
		t.Errorf("state did not round-trip: %+v", got.State)
	}
}

func TestByEventType(t *testing.T) {
	store := testStore(t, DefaultStoreConfig())

	for i := 0; i < 3; i++ {
		if err := store.Record(sampleTrace(model.EventLearning, nil)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := store.Record(sampleTrace(model.EventBoredom, nil)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	traces, err := store.ByEventType(model.EventLearning)
	if err != nil {
		t.Fatalf("ByEventType: %v", err)
	}
	if len(traces) != 3 {
		t.Errorf("got %d learning traces, want 3", len(traces))
	}
}

func TestDriftAlertSeverity(t *testing.T) {
	store := testStore(t, StoreConfig{RetentionDays: 30, DriftThreshold: 0.2, EnableDriftAlerts: true})

	// below threshold: no alert
	if err := store.Record(sampleTrace(model.EventSocial, map[string]float64{"warmth": 0.1})); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// medium: 0.25 > 0.2 but not past double
	medium := sampleTrace(model.EventSocial, map[string]float64{"warmth": 0.15, "humor": -0.1})
	if err := store.Record(medium); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// high: 0.5 > 0.4
	high := sampleTrace(model.EventSocial, map[string]float64{"warmth": 0.3, "formality": -0.2})
	if err := store.Record(high); err != nil {
		t.Fatalf("Record: %v", err)
	}

	alerts, err := store.Alerts(10)
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}

	bySeverity := map[string]int{}
	for _, a := range alerts {
		bySeverity[a.Severity]++
		if a.TraceID == "" {
			t.Error("alert must reference its trace")
		}
		if a.Threshold != 0.2 {
			t.Errorf("alert threshold = %f, want 0.2", a.Threshold)
		}
	}
	if bySeverity["medium"] != 1 || bySeverity["high"] != 1 {
		t.Errorf("severity counts = %v, want one medium and one high", bySeverity)
	}
}

func TestDriftAlertsDisabled(t *testing.T) {
	store := testStore(t, StoreConfig{RetentionDays: 30, DriftThreshold: 0.2, EnableDriftAlerts: false})

	if err := store.Record(sampleTrace(model.EventSocial, map[string]float64{"warmth": 0.9})); err != nil {
		t.Fatalf("Record: %v", err)
	}
	alerts, err := store.Alerts(10)
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("got %d alerts with alerts disabled, want 0", len(alerts))
	}
}

func TestRetentionEviction(t *testing.T) {
	store := testStore(t, StoreConfig{RetentionDays: 7, DriftThreshold: 0.2, EnableDriftAlerts: false})

	stale := sampleTrace(model.EventSolitary, nil)
	stale.TS = time.Now().UTC().AddDate(0, 0, -30)
	if err := store.Record(stale); err != nil {
		t.Fatalf("Record stale: %v", err)
	}

	// recording a fresh trace triggers eviction of the stale one
	if err := store.Record(sampleTrace(model.EventSocial, nil)); err != nil {
		t.Fatalf("Record fresh: %v", err)
	}

	traces, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(traces) != 1 {
		t.Fatalf("got %d traces after eviction, want 1", len(traces))
	}
	if traces[0].EventType != model.EventSocial {
		t.Errorf("surviving trace = %s, want social", traces[0].EventType)
	}
}

func TestByTimeRange(t *testing.T) {
	store := testStore(t, DefaultStoreConfig())

	old := sampleTrace(model.EventCreativity, nil)
	old.TS = time.Now().UTC().Add(-2 * time.Hour)
	if err := store.Record(old); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(sampleTrace(model.EventCreativity, nil)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	traces, err := store.ByTimeRange(time.Now().UTC().Add(-time.Hour), time.Now().UTC())
	if err != nil {
		t.Fatalf("ByTimeRange: %v", err)
	}
	if len(traces) != 1 {
		t.Errorf("got %d traces in window, want 1", len(traces))
	}
}

func TestEvolutionSummary(t *testing.T) {
	store := testStore(t, DefaultStoreConfig())

	if err := store.Record(sampleTrace(model.EventSocial, map[string]float64{"warmth": 0.1})); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(sampleTrace(model.EventSocial, map[string]float64{"warmth": -0.05})); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(sampleTrace(model.EventSolitary, nil)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	summary, err := store.Evolution(time.Hour)
	if err != nil {
		t.Fatalf("Evolution: %v", err)
	}
	if summary.TotalTraces != 3 {
		t.Errorf("total traces = %d, want 3", summary.TotalTraces)
	}
	if summary.TotalChanges != 2 {
		t.Errorf("total changes = %d, want 2", summary.TotalChanges)
	}
	warmth, ok := summary.DimensionChanges["warmth"]
	if !ok {
		t.Fatalf("no warmth dimension in %v", summary.DimensionChanges)
	}
	if warmth.Count != 2 || warmth.MaxIncrease != 0.1 || warmth.MaxDecrease != -0.05 {
		t.Errorf("warmth change = %+v", warmth)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := testStore(t, DefaultStoreConfig())

	snap := validSnapshot()
	id, err := store.SaveSnapshot(snap)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if id == "" {
		t.Fatal("snapshot ID should be assigned")
	}

	loaded, err := store.LoadSnapshot(id)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded.Traits != snap.Traits {
		t.Errorf("traits = %+v, want %+v", loaded.Traits, snap.Traits)
	}
	if loaded.State.Valence != snap.State.Valence {
		t.Errorf("valence = %f, want %f", loaded.State.Valence, snap.State.Valence)
	}

	active, err := store.LoadActiveSnapshot()
	if err != nil {
		t.Fatalf("LoadActiveSnapshot: %v", err)
	}
	if active.Traits != snap.Traits {
		t.Errorf("active snapshot traits = %+v, want %+v", active.Traits, snap.Traits)
	}
}

func TestSaveSnapshotRejectsInvalid(t *testing.T) {
	store := testStore(t, DefaultStoreConfig())

	snap := validSnapshot()
	snap.State.Valence = 5
	if _, err := store.SaveSnapshot(snap); err == nil {
		t.Fatal("out-of-range snapshot should be rejected")
	}
}

func validSnapshot() model.Snapshot {
	config := model.DefaultConfig()
	return model.Snapshot{
		Traits: model.DefaultTraits(),
		State: model.AffectiveState{
			Valence: 0.5, Arousal: 0.4, Fatigue: 0, Decay: config.AffectDecayRate,
		},
		Style: model.StyleProfile{
			Tone:       model.ToneProfile{Warmth: 0.425, Formality: 0.464, Humor: 0.425},
			Diction:    model.DictionProfile{SentenceLen: model.SentenceMedium, Metaphor: 0.5},
			Pacing:     model.PacingProfile{Expansiveness: 0.392},
			Stance:     model.StanceProfile{Assertiveness: 0.3725},
			Boundaries: model.BoundaryProfile{Sensitive: model.SensitivityNormal},
			Decoding: model.DecodingProfile{
				Temp: 0.9, TopP: 0.9, TopK: 50, Penalty: 1.1, MaxTokens: 800,
			},
		},
		Boundaries:      model.DefaultBoundaryCaps(),
		Config:          config,
		ExportTimestamp: time.Now().UTC(),
	}
}

package replay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

func ptr(v float64) *float64 { return &v }

func noonEvent(et model.EventType, intensity float64) model.EventUpdate {
	return model.EventUpdate{
		EventType: et,
		Intensity: intensity,
		Audience:  &model.AudienceContext{Type: model.AudienceFriend},
		Channel:   &model.ChannelContext{Type: model.ChannelChat, IsPrivate: true},
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestRunChecksExpectations(t *testing.T) {
	fixture := &Fixture{
		Description: "warm morning",
		Events: []model.EventUpdate{
			noonEvent(model.EventPositiveInteraction, 0.8),
			noonEvent(model.EventStress, 0.9),
		},
		ExpectedResults: []ExpectedResult{
			{MinValence: ptr(0.7), Tags: []string{"positive"}},
			{MaxValence: ptr(0.7)},
		},
	}

	results, summary, err := Run(fixture)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Applied != 2 || summary.Rejected != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.Mismatched != 0 {
		for _, res := range results {
			t.Errorf("event %d mismatches: %v", res.Index, res.Mismatches)
		}
	}
	if summary.FinalState.Valence != results[1].State.Valence {
		t.Errorf("final state %f != last result %f",
			summary.FinalState.Valence, results[1].State.Valence)
	}
}

func TestRunReportsMismatch(t *testing.T) {
	fixture := &Fixture{
		Description: "impossible bar",
		Events:      []model.EventUpdate{noonEvent(model.EventBoredom, 0.5)},
		ExpectedResults: []ExpectedResult{
			{MinValence: ptr(0.99), Tags: []string{"euphoric"}},
		},
	}

	results, summary, err := Run(fixture)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Mismatched != 1 {
		t.Fatalf("mismatched = %d, want 1", summary.Mismatched)
	}
	if len(results[0].Mismatches) != 2 {
		t.Errorf("mismatches = %v, want valence bound and missing tag", results[0].Mismatches)
	}
}

func TestRunCountsRejectedEvents(t *testing.T) {
	bad := noonEvent(model.EventSocial, 0.5)
	bad.Intensity = 3

	fixture := &Fixture{
		Events: []model.EventUpdate{
			bad,
			noonEvent(model.EventSocial, 0.5),
		},
	}

	results, summary, err := Run(fixture)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rejected != 1 || summary.Applied != 1 {
		t.Errorf("summary = %+v, want 1 rejected 1 applied", summary)
	}
	if results[0].Err == nil {
		t.Error("rejected event should carry its error")
	}
	if results[1].Err != nil {
		t.Errorf("valid event failed: %v", results[1].Err)
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	body := `{
		"description": "from disk",
		"events": [
			{"event_type": "achievement", "intensity": 0.6}
		],
		"expected_results": [
			{"min_valence": 0.5, "drift_detected": false}
		]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fixture, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if fixture.Description != "from disk" {
		t.Errorf("description = %q", fixture.Description)
	}
	if len(fixture.Events) != 1 || fixture.Events[0].EventType != model.EventAchievement {
		t.Errorf("events = %+v", fixture.Events)
	}
	exp := fixture.ExpectedResults[0]
	if exp.MinValence == nil || *exp.MinValence != 0.5 {
		t.Errorf("min_valence = %v", exp.MinValence)
	}
	if exp.DriftDetected == nil || *exp.DriftDetected {
		t.Errorf("drift_detected = %v", exp.DriftDetected)
	}

	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should error")
	}

	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Error("malformed JSON should error")
	}
}

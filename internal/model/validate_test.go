package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewTraitKernelRange(t *testing.T) {
	k, err := NewTraitKernel(0.2, 0.4, 0.6, 0.8, 1.0)
	if err != nil {
		t.Fatalf("valid kernel rejected: %v", err)
	}
	if k.Care != 1.0 {
		t.Errorf("care = %f, want 1.0", k.Care)
	}

	if _, err := NewTraitKernel(0.2, 0.4, 1.2, 0.8, 1.0); !IsValidation(err) {
		t.Errorf("wit=1.2 should fail validation, got %v", err)
	}
	if _, err := NewTraitKernel(-0.1, 0.4, 0.6, 0.8, 1.0); !IsValidation(err) {
		t.Errorf("curiosity=-0.1 should fail validation, got %v", err)
	}
}

func TestEventUpdateValidate(t *testing.T) {
	valid := EventUpdate{EventType: EventPositiveInteraction, Intensity: 0.8}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}

	// unknown event types are a zero-impact no-op, not an error
	unknown := EventUpdate{EventType: "cosmic_alignment", Intensity: 0.5}
	if err := unknown.Validate(); err != nil {
		t.Errorf("unknown event type should pass: %v", err)
	}

	empty := EventUpdate{Intensity: 0.5}
	if err := empty.Validate(); !IsValidation(err) {
		t.Errorf("empty event type should fail, got %v", err)
	}

	hot := EventUpdate{EventType: EventStress, Intensity: 2}
	if err := hot.Validate(); !IsValidation(err) {
		t.Errorf("intensity=2 should fail, got %v", err)
	}

	badAudience := EventUpdate{
		EventType: EventStress,
		Intensity: 0.5,
		Audience:  &AudienceContext{Type: "alien"},
	}
	if err := badAudience.Validate(); !IsValidation(err) {
		t.Errorf("unknown audience type should fail, got %v", err)
	}

	badChannel := EventUpdate{
		EventType: EventStress,
		Intensity: 0.5,
		Channel:   &ChannelContext{Type: "telegraph"},
	}
	if err := badChannel.Validate(); !IsValidation(err) {
		t.Errorf("unknown channel type should fail, got %v", err)
	}
}

func TestSnapshotValidateWrapsError(t *testing.T) {
	snap := validSnapshot()
	if err := snap.Validate(); err != nil {
		t.Fatalf("valid snapshot rejected: %v", err)
	}

	snap.State.Valence = 3
	err := snap.Validate()
	if err == nil {
		t.Fatal("out-of-range valence should fail")
	}
	var ise *InvalidSnapshotError
	if !errors.As(err, &ise) {
		t.Errorf("error %v should be an InvalidSnapshotError", err)
	}
	if !IsValidation(err) {
		t.Errorf("snapshot error should still unwrap to a validation error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	config.TraceRetentionDays = 0
	if err := config.Validate(); !IsValidation(err) {
		t.Errorf("zero retention should fail, got %v", err)
	}

	config = DefaultConfig()
	config.DriftThreshold = 1.5
	if err := config.Validate(); !IsValidation(err) {
		t.Errorf("drift threshold 1.5 should fail, got %v", err)
	}
}

func TestTagHelpers(t *testing.T) {
	tags := AddTag(nil, "positive")
	tags = AddTag(tags, "calm")
	tags = AddTag(tags, "positive") // dedup

	want := []string{"calm", "positive"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v (sorted, deduped)", tags, want)
	}
	if !HasTag(tags, "calm") || HasTag(tags, "anxious") {
		t.Errorf("HasTag lookups wrong for %v", tags)
	}

	clone := CopyTags(tags)
	clone[0] = "mutated"
	if tags[0] != "calm" {
		t.Error("CopyTags must not alias the source slice")
	}
}

func validSnapshot() Snapshot {
	config := DefaultConfig()
	return Snapshot{
		Traits: DefaultTraits(),
		State: AffectiveState{
			Valence: 0.5,
			Arousal: 0.4,
			Fatigue: 0,
			Decay:   config.AffectDecayRate,
		},
		Style: StyleProfile{
			Tone:       ToneProfile{Warmth: 0.425, Formality: 0.464, Humor: 0.425},
			Diction:    DictionProfile{SentenceLen: SentenceMedium, Metaphor: 0.5},
			Pacing:     PacingProfile{Expansiveness: 0.392},
			Stance:     StanceProfile{Assertiveness: 0.3725},
			Boundaries: BoundaryProfile{Sensitive: SensitivityNormal},
			Decoding: DecodingProfile{
				Temp: 0.9, TopP: 0.9, TopK: 50, Penalty: 1.1, MaxTokens: 800,
			},
		},
		Boundaries: DefaultBoundaryCaps(),
		Config:     config,
	}
}

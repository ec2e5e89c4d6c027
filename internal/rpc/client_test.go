package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/persona-matrix/gen/personapb"
	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region mock
type mockPersonaService struct {
	pb.PersonaServiceClient

	applyResp *pb.ApplyEventResponse
	applyErr  error

	stateResp *pb.State
	stateErr  error

	summaryResp *pb.SummaryResponse
	summaryErr  error

	snapshotResp *pb.Snapshot
	snapshotErr  error

	safetyResp *pb.SafetyResponse
	safetyErr  error

	lensingResp *pb.LensingResponse
	lensingErr  error
}

func (m *mockPersonaService) ApplyEvent(_ context.Context, _ *pb.ApplyEventRequest, _ ...grpc.CallOption) (*pb.ApplyEventResponse, error) {
	return m.applyResp, m.applyErr
}

func (m *mockPersonaService) GetState(_ context.Context, _ *pb.Empty, _ ...grpc.CallOption) (*pb.State, error) {
	return m.stateResp, m.stateErr
}

func (m *mockPersonaService) GetSummary(_ context.Context, _ *pb.Empty, _ ...grpc.CallOption) (*pb.SummaryResponse, error) {
	return m.summaryResp, m.summaryErr
}

func (m *mockPersonaService) ExportSnapshot(_ context.Context, _ *pb.Empty, _ ...grpc.CallOption) (*pb.Snapshot, error) {
	return m.snapshotResp, m.snapshotErr
}

func (m *mockPersonaService) CheckContentSafety(_ context.Context, _ *pb.SafetyRequest, _ ...grpc.CallOption) (*pb.SafetyResponse, error) {
	return m.safetyResp, m.safetyErr
}

func (m *mockPersonaService) ApplyLensing(_ context.Context, _ *pb.LensingRequest, _ ...grpc.CallOption) (*pb.LensingResponse, error) {
	return m.lensingResp, m.lensingErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockPersonaService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	if err := c.Close(); err != nil {
		t.Errorf("close without connection: %v", err)
	}
}

// #endregion constructor-tests

// #region apply-event-tests
func TestClientApplyEvent(t *testing.T) {
	mock := &mockPersonaService{
		applyResp: &pb.ApplyEventResponse{
			State: &pb.State{Valence: 0.7232, Arousal: 0.5, Tags: []string{"positive"}},
			Style: &pb.Style{
				Warmth:      0.596024,
				SentenceLen: "medium",
				Sensitive:   "normal",
				Decoding:    &pb.Decoding{Temp: 1.0, TopP: 0.9, TopK: 50, Penalty: 1.1, MaxTokens: 900},
			},
			Boundaries:     &pb.Boundaries{MaxFlirtation: 0.3, MaxHumor: 0.7, MaxCandor: 0.9, MinFormality: 0.5},
			DriftDetected:  false,
			DriftMagnitude: 0.115,
		},
	}
	c := NewClientWithService(mock)

	result, err := c.ApplyEvent(context.Background(), model.EventUpdate{
		EventType: model.EventPositiveInteraction,
		Intensity: 0.8,
		Audience:  &model.AudienceContext{Type: model.AudienceFriend},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Valence != 0.7232 {
		t.Errorf("valence = %f, want 0.7232", result.State.Valence)
	}
	if result.Style.Tone.Warmth != 0.596024 {
		t.Errorf("warmth = %f, want 0.596024", result.Style.Tone.Warmth)
	}
	if result.Style.Decoding.TopK != 50 {
		t.Errorf("top_k = %d, want 50", result.Style.Decoding.TopK)
	}
	if result.Boundaries.MaxFlirtation != 0.3 {
		t.Errorf("max_flirtation = %f, want 0.3", result.Boundaries.MaxFlirtation)
	}
	if result.DriftDetected {
		t.Error("drift_detected should be false")
	}
}

func TestClientApplyEventError(t *testing.T) {
	mock := &mockPersonaService{applyErr: errors.New("rpc failed")}
	c := NewClientWithService(mock)

	_, err := c.ApplyEvent(context.Background(), model.EventUpdate{
		EventType: model.EventStress,
		Intensity: 0.5,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.applyErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion apply-event-tests

// #region getter-tests
func TestClientState(t *testing.T) {
	mock := &mockPersonaService{
		stateResp: &pb.State{
			Ts: "2026-03-14T12:00:00Z", Valence: 0.5, Arousal: 0.4, Decay: 0.92,
			Tags: []string{"baseline"},
		},
	}
	c := NewClientWithService(mock)

	state, err := c.State(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Valence != 0.5 || state.Decay != 0.92 {
		t.Errorf("state = %+v", state)
	}
	if state.Timestamp.IsZero() {
		t.Error("timestamp should parse")
	}
	if !model.HasTag(state.Tags, "baseline") {
		t.Errorf("tags = %v", state.Tags)
	}
}

func TestClientSummary(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{
		"current_mood": map[string]any{"valence": 0.5},
	})
	mock := &mockPersonaService{summaryResp: &pb.SummaryResponse{SummaryJson: string(payload)}}
	c := NewClientWithService(mock)

	summary, err := c.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CurrentMood.Valence != 0.5 {
		t.Errorf("mood = %+v", summary.CurrentMood)
	}

	mock.summaryResp = &pb.SummaryResponse{SummaryJson: "not json"}
	if _, err := c.Summary(context.Background()); err == nil {
		t.Fatal("malformed payload should error")
	}
}

// #endregion getter-tests

// #region snapshot-tests
func TestClientExportSnapshot(t *testing.T) {
	snap := model.Snapshot{
		Traits: model.DefaultTraits(),
		State:  model.AffectiveState{Valence: 0.5, Arousal: 0.4, Decay: 0.92},
	}
	data, _ := json.Marshal(snap)
	mock := &mockPersonaService{snapshotResp: &pb.Snapshot{SnapshotJson: string(data)}}
	c := NewClientWithService(mock)

	got, err := c.ExportSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Traits != snap.Traits {
		t.Errorf("traits = %+v, want %+v", got.Traits, snap.Traits)
	}
	if got.State.Valence != 0.5 {
		t.Errorf("valence = %f, want 0.5", got.State.Valence)
	}
}

// #endregion snapshot-tests

// #region safety-tests
func TestClientCheckContentSafety(t *testing.T) {
	mock := &mockPersonaService{
		safetyResp: &pb.SafetyResponse{
			Safe:       false,
			RiskLevel:  "medium",
			Violations: []string{"excessive_humor"},
		},
	}
	c := NewClientWithService(mock)

	result, err := c.CheckContentSafety(context.Background(), "that joke was hilarious")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Safe {
		t.Error("expected unsafe")
	}
	if result.RiskLevel != "medium" {
		t.Errorf("risk = %q, want medium", result.RiskLevel)
	}
	if len(result.Violations) != 1 || result.Violations[0] != "excessive_humor" {
		t.Errorf("violations = %v", result.Violations)
	}
}

// #endregion safety-tests

// #region lensing-tests
func TestClientTagMemory(t *testing.T) {
	mock := &mockPersonaService{
		lensingResp: &pb.LensingResponse{
			Lenses: map[string]float64{"educational": 0.8, "growth": 0.6},
		},
	}
	c := NewClientWithService(mock)

	lenses, err := c.TagMemory(context.Background(), "studied all night", "learning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lenses["educational"] != 0.8 {
		t.Errorf("lenses = %v", lenses)
	}
}

func TestClientTagMemoryError(t *testing.T) {
	mock := &mockPersonaService{lensingErr: errors.New("lensing failed")}
	c := NewClientWithService(mock)

	if _, err := c.TagMemory(context.Background(), "x", "y"); !errors.Is(err, mock.lensingErr) {
		t.Errorf("expected wrapped lensing error, got: %v", err)
	}
}

// #endregion lensing-tests

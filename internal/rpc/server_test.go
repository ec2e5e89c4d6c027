package rpc

import (
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/persona-matrix/gen/personapb"
	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/orchestrator"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	matrix, err := orchestrator.New(model.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("orchestrator.New: %v", err)
	}
	return NewServer(matrix, nil)
}

func newTestServerWithStore(t *testing.T) *Server {
	t.Helper()
	store, err := trace.NewStore(filepath.Join(t.TempDir(), "rpc_test.db"), trace.DefaultStoreConfig())
	if err != nil {
		t.Fatalf("trace.NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	matrix, err := orchestrator.New(model.DefaultConfig(), store)
	if err != nil {
		t.Fatalf("orchestrator.New: %v", err)
	}
	return NewServer(matrix, store)
}

func applyEventRequest() *pb.ApplyEventRequest {
	return &pb.ApplyEventRequest{
		EventType: "positive_interaction",
		Intensity: 0.8,
		Audience:  &pb.AudienceContext{Name: "sam", Type: "friend"},
		Channel:   &pb.ChannelContext{Type: "chat", IsPrivate: true},
		Timestamp: "2026-03-14T12:00:00Z",
	}
}

func TestApplyEventRPC(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.ApplyEvent(context.Background(), applyEventRequest())
	if err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}
	if math.Abs(resp.State.Valence-0.7232) > 1e-9 {
		t.Errorf("valence = %f, want 0.7232", resp.State.Valence)
	}
	if math.Abs(resp.Style.Warmth-0.596024) > 1e-9 {
		t.Errorf("warmth = %f, want 0.596024", resp.Style.Warmth)
	}
	if resp.Boundaries.MaxFlirtation != 0.3 {
		t.Errorf("max_flirtation = %f, want 0.3", resp.Boundaries.MaxFlirtation)
	}
	if resp.DriftDetected {
		t.Errorf("drift %f should stay under threshold", resp.DriftMagnitude)
	}
}

func TestApplyEventRPCInvalidArgument(t *testing.T) {
	srv := newTestServer(t)

	req := applyEventRequest()
	req.Audience.Type = "alien"
	_, err := srv.ApplyEvent(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("unknown audience: code = %v, want InvalidArgument", status.Code(err))
	}

	req = applyEventRequest()
	req.Timestamp = "yesterday-ish"
	_, err = srv.ApplyEvent(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("bad timestamp: code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestGetters(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	traits, err := srv.GetTraits(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("GetTraits: %v", err)
	}
	if traits.Curiosity != 0.5 || traits.Care != 0.5 {
		t.Errorf("traits = %+v", traits)
	}

	state, err := srv.GetState(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Valence != 0.5 || state.Arousal != 0.4 {
		t.Errorf("state = %+v", state)
	}

	styleResp, err := srv.GetStyle(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("GetStyle: %v", err)
	}
	if math.Abs(styleResp.Warmth-0.425) > 1e-9 {
		t.Errorf("warmth = %f, want 0.425", styleResp.Warmth)
	}
	if styleResp.SentenceLen != "medium" {
		t.Errorf("sentence_len = %q, want medium", styleResp.SentenceLen)
	}

	decoding, err := srv.GetDecoding(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("GetDecoding: %v", err)
	}
	if decoding.TopK != 50 {
		t.Errorf("top_k = %d, want 50", decoding.TopK)
	}

	summary, err := srv.GetSummary(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	var parsed orchestrator.Summary
	if err := json.Unmarshal([]byte(summary.SummaryJson), &parsed); err != nil {
		t.Fatalf("summary payload not JSON: %v", err)
	}
	if parsed.CurrentMood.Valence != 0.5 {
		t.Errorf("summary mood = %+v", parsed.CurrentMood)
	}
}

func TestSnapshotRPCRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	if _, err := srv.ApplyEvent(ctx, applyEventRequest()); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}
	snap, err := srv.ExportSnapshot(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	restored := newTestServer(t)
	if _, err := restored.ImportSnapshot(ctx, snap); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	state, err := restored.GetState(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if math.Abs(state.Valence-0.7232) > 1e-9 {
		t.Errorf("restored valence = %f, want 0.7232", state.Valence)
	}

	bad := &pb.Snapshot{SnapshotJson: "not json"}
	if _, err := restored.ImportSnapshot(ctx, bad); status.Code(err) != codes.InvalidArgument {
		t.Errorf("malformed snapshot: code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestCheckContentSafetyRPC(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.CheckContentSafety(context.Background(), &pb.SafetyRequest{
		Content: "the threat of violence",
	})
	if err != nil {
		t.Fatalf("CheckContentSafety: %v", err)
	}
	if resp.Safe {
		t.Error("sensitive words should flag unsafe")
	}
	if resp.RiskLevel != "medium" {
		t.Errorf("risk = %s, want medium", resp.RiskLevel)
	}
	if resp.IssuesJson == "" {
		t.Error("issues payload missing")
	}
}

func TestObservabilityRequiresStore(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	if _, err := srv.RecentTraces(ctx, &pb.TraceQuery{}); status.Code(err) != codes.Unavailable {
		t.Errorf("RecentTraces without store: code = %v, want Unavailable", status.Code(err))
	}
	if _, err := srv.DriftAlerts(ctx, &pb.AlertQuery{}); status.Code(err) != codes.Unavailable {
		t.Errorf("DriftAlerts without store: code = %v, want Unavailable", status.Code(err))
	}
}

func TestRecentTracesRPC(t *testing.T) {
	srv := newTestServerWithStore(t)
	ctx := context.Background()

	if _, err := srv.ApplyEvent(ctx, applyEventRequest()); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	resp, err := srv.RecentTraces(ctx, &pb.TraceQuery{Limit: 5})
	if err != nil {
		t.Fatalf("RecentTraces: %v", err)
	}
	if len(resp.TracesJson) != 1 {
		t.Fatalf("got %d traces, want 1", len(resp.TracesJson))
	}
	var tr trace.StyleTrace
	if err := json.Unmarshal([]byte(resp.TracesJson[0]), &tr); err != nil {
		t.Fatalf("trace payload not JSON: %v", err)
	}
	if tr.EventType != model.EventPositiveInteraction {
		t.Errorf("trace event = %s", tr.EventType)
	}

	filtered, err := srv.RecentTraces(ctx, &pb.TraceQuery{EventType: "stress"})
	if err != nil {
		t.Fatalf("RecentTraces filtered: %v", err)
	}
	if len(filtered.TracesJson) != 0 {
		t.Errorf("got %d stress traces, want 0", len(filtered.TracesJson))
	}
}

func TestApplyLensingRPC(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.ApplyLensing(context.Background(), &pb.LensingRequest{
		Content:    "we studied hard to understand the proof",
		MemoryType: "learning",
	})
	if err != nil {
		t.Fatalf("ApplyLensing: %v", err)
	}
	if _, ok := resp.Lenses["educational"]; !ok {
		t.Errorf("missing educational lens in %v", resp.Lenses)
	}
	for name, w := range resp.Lenses {
		if w < 0.1 || w > 0.9 {
			t.Errorf("lens %s = %f outside [0.1, 0.9]", name, w)
		}
	}
}

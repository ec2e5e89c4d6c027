package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/persona-matrix/gen/personapb"
	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/orchestrator"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

// #region types

// EventResult holds the pipeline outcome returned by an ApplyEvent call.
type EventResult struct {
	State          model.AffectiveState
	Style          model.StyleProfile
	Boundaries     model.BoundaryCaps
	DriftDetected  bool
	DriftMagnitude float64
}

// SafetyResult holds the response from a CheckContentSafety call.
type SafetyResult struct {
	Safe            bool
	RiskLevel       string
	Violations      []string
	Recommendations []string
	IssuesJSON      string
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to a running persona daemon.
type Client struct {
	conn   *grpc.ClientConn
	client pb.PersonaServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the persona daemon.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewPersonaServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PersonaServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region apply-event

// ApplyEvent sends one event through the daemon's pipeline.
func (c *Client) ApplyEvent(ctx context.Context, event model.EventUpdate) (EventResult, error) {
	req := &pb.ApplyEventRequest{
		EventType: string(event.EventType),
		Intensity: event.Intensity,
	}
	if event.Audience != nil {
		req.Audience = &pb.AudienceContext{
			Name:           event.Audience.Name,
			Type:           string(event.Audience.Type),
			Role:           event.Audience.Role,
			Relationship:   event.Audience.Relationship,
			AgeGroup:       event.Audience.AgeGroup,
			ExpertiseLevel: event.Audience.ExpertiseLevel,
		}
	}
	if event.Channel != nil {
		req.Channel = &pb.ChannelContext{
			Type:          string(event.Channel.Type),
			Platform:      event.Channel.Platform,
			IsPrivate:     event.Channel.IsPrivate,
			HasAudience:   event.Channel.HasAudience,
			IsSynchronous: event.Channel.IsSynchronous,
		}
	}
	if !event.Context.IsZero() {
		req.Context = &pb.EventContext{
			ChildrenPresent: event.Context.ChildrenPresent,
			WorkContext:     event.Context.WorkContext,
			SocialContext:   event.Context.SocialContext,
			LearningContext: event.Context.LearningContext,
			CreativeContext: event.Context.CreativeContext,
			SensitiveTopics: event.Context.SensitiveTopics,
			EmotionalState:  event.Context.EmotionalState,
		}
	}
	if !event.Timestamp.IsZero() {
		req.Timestamp = event.Timestamp.Format(time.RFC3339Nano)
	}

	resp, err := c.client.ApplyEvent(ctx, req)
	if err != nil {
		return EventResult{}, fmt.Errorf("apply event rpc: %w", err)
	}
	return EventResult{
		State:          stateFromProto(resp.State),
		Style:          styleFromProto(resp.Style),
		Boundaries:     capsFromProto(resp.Boundaries),
		DriftDetected:  resp.DriftDetected,
		DriftMagnitude: resp.DriftMagnitude,
	}, nil
}

// #endregion apply-event

// #region getters

// State fetches the daemon's current affective state.
func (c *Client) State(ctx context.Context) (model.AffectiveState, error) {
	resp, err := c.client.GetState(ctx, &pb.Empty{})
	if err != nil {
		return model.AffectiveState{}, fmt.Errorf("get state rpc: %w", err)
	}
	return stateFromProto(resp), nil
}

// Style fetches the daemon's current style profile.
func (c *Client) Style(ctx context.Context) (model.StyleProfile, error) {
	resp, err := c.client.GetStyle(ctx, &pb.Empty{})
	if err != nil {
		return model.StyleProfile{}, fmt.Errorf("get style rpc: %w", err)
	}
	return styleFromProto(resp), nil
}

// Boundaries fetches the daemon's current boundary caps.
func (c *Client) Boundaries(ctx context.Context) (model.BoundaryCaps, error) {
	resp, err := c.client.GetBoundaries(ctx, &pb.Empty{})
	if err != nil {
		return model.BoundaryCaps{}, fmt.Errorf("get boundaries rpc: %w", err)
	}
	return capsFromProto(resp), nil
}

// Decoding fetches the sampler parameters of the current style.
func (c *Client) Decoding(ctx context.Context) (model.DecodingProfile, error) {
	resp, err := c.client.GetDecoding(ctx, &pb.Empty{})
	if err != nil {
		return model.DecodingProfile{}, fmt.Errorf("get decoding rpc: %w", err)
	}
	return decodingFromProto(resp), nil
}

// Summary fetches the daemon's personality summary.
func (c *Client) Summary(ctx context.Context) (orchestrator.Summary, error) {
	resp, err := c.client.GetSummary(ctx, &pb.Empty{})
	if err != nil {
		return orchestrator.Summary{}, fmt.Errorf("get summary rpc: %w", err)
	}
	var summary orchestrator.Summary
	if err := json.Unmarshal([]byte(resp.SummaryJson), &summary); err != nil {
		return orchestrator.Summary{}, fmt.Errorf("parse summary: %w", err)
	}
	return summary, nil
}

// #endregion getters

// #region reset-snapshot

// ResetToBaseline returns the daemon's triad to its rest configuration.
func (c *Client) ResetToBaseline(ctx context.Context) (model.StyleProfile, error) {
	resp, err := c.client.ResetToBaseline(ctx, &pb.Empty{})
	if err != nil {
		return model.StyleProfile{}, fmt.Errorf("reset rpc: %w", err)
	}
	return styleFromProto(resp), nil
}

// ExportSnapshot fetches the daemon's full triad plus configuration.
func (c *Client) ExportSnapshot(ctx context.Context) (model.Snapshot, error) {
	resp, err := c.client.ExportSnapshot(ctx, &pb.Empty{})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export snapshot rpc: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(resp.SnapshotJson), &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}

// ImportSnapshot replaces the daemon's triad with the given snapshot.
func (c *Client) ImportSnapshot(ctx context.Context, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := c.client.ImportSnapshot(ctx, &pb.Snapshot{SnapshotJson: string(data)}); err != nil {
		return fmt.Errorf("import snapshot rpc: %w", err)
	}
	return nil
}

// #endregion reset-snapshot

// #region safety

// CheckContentSafety screens content against the daemon's current caps.
func (c *Client) CheckContentSafety(ctx context.Context, content string) (SafetyResult, error) {
	resp, err := c.client.CheckContentSafety(ctx, &pb.SafetyRequest{Content: content})
	if err != nil {
		return SafetyResult{}, fmt.Errorf("safety rpc: %w", err)
	}
	return SafetyResult{
		Safe:            resp.Safe,
		RiskLevel:       resp.RiskLevel,
		Violations:      resp.Violations,
		Recommendations: resp.Recommendations,
		IssuesJSON:      resp.IssuesJson,
	}, nil
}

// #endregion safety

// #region observability

// RecentTraces fetches up to limit traces, optionally filtered by event type.
func (c *Client) RecentTraces(ctx context.Context, limit int, eventType string) ([]trace.StyleTrace, error) {
	resp, err := c.client.RecentTraces(ctx, &pb.TraceQuery{
		Limit:     int32(limit),
		EventType: eventType,
	})
	if err != nil {
		return nil, fmt.Errorf("traces rpc: %w", err)
	}
	traces := make([]trace.StyleTrace, 0, len(resp.TracesJson))
	for _, raw := range resp.TracesJson {
		var t trace.StyleTrace
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("parse trace: %w", err)
		}
		traces = append(traces, t)
	}
	return traces, nil
}

// DriftAlerts fetches up to limit drift alerts, newest first.
func (c *Client) DriftAlerts(ctx context.Context, limit int) ([]trace.DriftAlert, error) {
	resp, err := c.client.DriftAlerts(ctx, &pb.AlertQuery{Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("alerts rpc: %w", err)
	}
	alerts := make([]trace.DriftAlert, 0, len(resp.AlertsJson))
	for _, raw := range resp.AlertsJson {
		var a trace.DriftAlert
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, fmt.Errorf("parse alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}

// #endregion observability

// #region lensing

// TagMemory asks the daemon to lens a memory under its current mood.
func (c *Client) TagMemory(ctx context.Context, content, memoryType string) (map[string]float64, error) {
	resp, err := c.client.ApplyLensing(ctx, &pb.LensingRequest{
		Content:    content,
		MemoryType: memoryType,
	})
	if err != nil {
		return nil, fmt.Errorf("lensing rpc: %w", err)
	}
	return resp.Lenses, nil
}

// #endregion lensing

// #region conversions

func stateFromProto(s *pb.State) model.AffectiveState {
	if s == nil {
		return model.AffectiveState{}
	}
	ts, _ := time.Parse(time.RFC3339Nano, s.Ts)
	return model.AffectiveState{
		Timestamp: ts,
		Valence:   s.Valence,
		Arousal:   s.Arousal,
		Fatigue:   s.Fatigue,
		Decay:     s.Decay,
		Tags:      s.Tags,
	}
}

func styleFromProto(s *pb.Style) model.StyleProfile {
	if s == nil {
		return model.StyleProfile{}
	}
	return model.StyleProfile{
		Tone: model.ToneProfile{
			Warmth:     s.Warmth,
			Formality:  s.Formality,
			Humor:      s.Humor,
			Flirtation: s.Flirtation,
		},
		Diction: model.DictionProfile{
			SentenceLen: model.SentenceLength(s.SentenceLen),
			Metaphor:    s.Metaphor,
		},
		Pacing: model.PacingProfile{Expansiveness: s.Expansiveness},
		Stance: model.StanceProfile{Assertiveness: s.Assertiveness},
		Boundaries: model.BoundaryProfile{
			NSFW:      s.Nsfw,
			Sensitive: model.SensitivityLevel(s.Sensitive),
		},
		Decoding: decodingFromProto(s.Decoding),
	}
}

func decodingFromProto(d *pb.Decoding) model.DecodingProfile {
	if d == nil {
		return model.DecodingProfile{}
	}
	return model.DecodingProfile{
		Temp:      d.Temp,
		TopP:      d.TopP,
		TopK:      int(d.TopK),
		Penalty:   d.Penalty,
		MaxTokens: int(d.MaxTokens),
	}
}

func capsFromProto(c *pb.Boundaries) model.BoundaryCaps {
	if c == nil {
		return model.BoundaryCaps{}
	}
	return model.BoundaryCaps{
		MaxFlirtation: c.MaxFlirtation,
		MaxHumor:      c.MaxHumor,
		MaxCandor:     c.MaxCandor,
		MinFormality:  c.MinFormality,
		SafetyTags:    c.SafetyTags,
	}
}

// #endregion conversions

// Package rpc serves the personality matrix over gRPC. Generated
// bindings under gen/personapb come from proto/persona.proto via
// protoc and are not committed.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/persona-matrix/gen/personapb"
	"github.com/danielpatrickdp/persona-matrix/internal/boundary"
	"github.com/danielpatrickdp/persona-matrix/internal/lensing"
	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/orchestrator"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

// #region server-struct

// Server implements pb.PersonaServiceServer against a matrix and an
// optional trace store.
type Server struct {
	pb.UnimplementedPersonaServiceServer

	matrix *orchestrator.Matrix
	store  *trace.Store // nil when tracing is disabled
}

// NewServer wires a server. Pass a nil store to disable the
// observability endpoints.
func NewServer(matrix *orchestrator.Matrix, store *trace.Store) *Server {
	return &Server{matrix: matrix, store: store}
}

// #endregion server-struct

// #region apply-event

// ApplyEvent runs one event through the pipeline.
func (s *Server) ApplyEvent(ctx context.Context, req *pb.ApplyEventRequest) (*pb.ApplyEventResponse, error) {
	event, err := eventFromProto(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse event: %v", err)
	}

	outcome, err := s.matrix.ApplyEvent(event)
	if err != nil {
		if model.IsValidation(err) {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "apply event: %v", err)
	}

	return &pb.ApplyEventResponse{
		State:          stateToProto(outcome.State),
		Style:          styleToProto(outcome.Style),
		Boundaries:     capsToProto(outcome.Boundaries),
		DriftDetected:  outcome.DriftDetected,
		DriftMagnitude: outcome.DriftMagnitude,
	}, nil
}

// #endregion apply-event

// #region getters

func (s *Server) GetTraits(ctx context.Context, _ *pb.Empty) (*pb.Traits, error) {
	t := s.matrix.Traits()
	return &pb.Traits{
		Curiosity: t.Curiosity,
		Balance:   t.Balance,
		Wit:       t.Wit,
		Candor:    t.Candor,
		Care:      t.Care,
	}, nil
}

func (s *Server) GetState(ctx context.Context, _ *pb.Empty) (*pb.State, error) {
	return stateToProto(s.matrix.State()), nil
}

func (s *Server) GetStyle(ctx context.Context, _ *pb.Empty) (*pb.Style, error) {
	return styleToProto(s.matrix.Style()), nil
}

func (s *Server) GetBoundaries(ctx context.Context, _ *pb.Empty) (*pb.Boundaries, error) {
	return capsToProto(s.matrix.Boundaries()), nil
}

func (s *Server) GetDecoding(ctx context.Context, _ *pb.Empty) (*pb.Decoding, error) {
	return decodingToProto(s.matrix.Decoding()), nil
}

func (s *Server) GetSummary(ctx context.Context, _ *pb.Empty) (*pb.SummaryResponse, error) {
	data, err := json.Marshal(s.matrix.Summarize())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal summary: %v", err)
	}
	return &pb.SummaryResponse{SummaryJson: string(data)}, nil
}

// #endregion getters

// #region reset-snapshot

func (s *Server) ResetToBaseline(ctx context.Context, _ *pb.Empty) (*pb.Style, error) {
	log.Printf("[RPC] reset to baseline")
	return styleToProto(s.matrix.ResetToBaseline()), nil
}

func (s *Server) ExportSnapshot(ctx context.Context, _ *pb.Empty) (*pb.Snapshot, error) {
	snap := s.matrix.ExportSnapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal snapshot: %v", err)
	}
	if s.store != nil {
		if _, err := s.store.SaveSnapshot(snap); err != nil {
			log.Printf("[RPC] snapshot persist failed: %v", err)
		}
	}
	return &pb.Snapshot{SnapshotJson: string(data)}, nil
}

func (s *Server) ImportSnapshot(ctx context.Context, req *pb.Snapshot) (*pb.Empty, error) {
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(req.SnapshotJson), &snap); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse snapshot: %v", err)
	}
	if err := s.matrix.ImportSnapshot(snap); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return &pb.Empty{}, nil
}

// #endregion reset-snapshot

// #region safety

func (s *Server) CheckContentSafety(ctx context.Context, req *pb.SafetyRequest) (*pb.SafetyResponse, error) {
	report := boundary.CheckContentSafety(req.Content, s.matrix.Boundaries())

	issuesJSON, err := json.Marshal(report.Issues)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal issues: %v", err)
	}
	return &pb.SafetyResponse{
		Safe:            report.Safe,
		RiskLevel:       report.RiskLevel,
		Violations:      report.Violations,
		Recommendations: report.Recommendations,
		IssuesJson:      string(issuesJSON),
	}, nil
}

// #endregion safety

// #region observability

func (s *Server) RecentTraces(ctx context.Context, req *pb.TraceQuery) (*pb.TraceList, error) {
	if s.store == nil {
		return nil, status.Error(codes.Unavailable, "tracing disabled")
	}

	limit := int(req.Limit)
	if limit <= 0 {
		limit = 10
	}

	var traces []trace.StyleTrace
	var err error
	if req.EventType != "" {
		traces, err = s.store.ByEventType(model.EventType(req.EventType))
		if err == nil && len(traces) > limit {
			traces = traces[:limit]
		}
	} else {
		traces, err = s.store.Recent(limit)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "query traces: %v", err)
	}

	out := make([]string, 0, len(traces))
	for _, t := range traces {
		data, err := json.Marshal(t)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "marshal trace: %v", err)
		}
		out = append(out, string(data))
	}
	return &pb.TraceList{TracesJson: out}, nil
}

func (s *Server) DriftAlerts(ctx context.Context, req *pb.AlertQuery) (*pb.AlertList, error) {
	if s.store == nil {
		return nil, status.Error(codes.Unavailable, "tracing disabled")
	}

	limit := int(req.Limit)
	if limit <= 0 {
		limit = 10
	}
	alerts, err := s.store.Alerts(limit)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "query alerts: %v", err)
	}

	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		data, err := json.Marshal(a)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "marshal alert: %v", err)
		}
		out = append(out, string(data))
	}
	return &pb.AlertList{AlertsJson: out}, nil
}

// #endregion observability

// #region lensing

func (s *Server) ApplyLensing(ctx context.Context, req *pb.LensingRequest) (*pb.LensingResponse, error) {
	lenses := lensing.TagMemory(req.Content, req.MemoryType, s.matrix.State(), s.matrix.Style())
	return &pb.LensingResponse{Lenses: map[string]float64(lenses)}, nil
}

// #endregion lensing

// #region conversions

func eventFromProto(req *pb.ApplyEventRequest) (model.EventUpdate, error) {
	event := model.EventUpdate{
		EventType: model.EventType(req.EventType),
		Intensity: req.Intensity,
	}

	if req.Audience != nil {
		event.Audience = &model.AudienceContext{
			Name:           req.Audience.Name,
			Type:           model.AudienceType(req.Audience.Type),
			Role:           req.Audience.Role,
			Relationship:   req.Audience.Relationship,
			AgeGroup:       req.Audience.AgeGroup,
			ExpertiseLevel: req.Audience.ExpertiseLevel,
		}
	}
	if req.Channel != nil {
		event.Channel = &model.ChannelContext{
			Type:          model.ChannelType(req.Channel.Type),
			Platform:      req.Channel.Platform,
			IsPrivate:     req.Channel.IsPrivate,
			HasAudience:   req.Channel.HasAudience,
			IsSynchronous: req.Channel.IsSynchronous,
		}
	}
	if req.Context != nil {
		event.Context = model.EventContext{
			ChildrenPresent: req.Context.ChildrenPresent,
			WorkContext:     req.Context.WorkContext,
			SocialContext:   req.Context.SocialContext,
			LearningContext: req.Context.LearningContext,
			CreativeContext: req.Context.CreativeContext,
			SensitiveTopics: req.Context.SensitiveTopics,
			EmotionalState:  req.Context.EmotionalState,
		}
	}
	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, req.Timestamp)
		if err != nil {
			return model.EventUpdate{}, fmt.Errorf("parse timestamp: %w", err)
		}
		event.Timestamp = ts
	}
	return event, nil
}

func stateToProto(s model.AffectiveState) *pb.State {
	return &pb.State{
		Ts:      s.Timestamp.Format(time.RFC3339Nano),
		Valence: s.Valence,
		Arousal: s.Arousal,
		Fatigue: s.Fatigue,
		Decay:   s.Decay,
		Tags:    s.Tags,
	}
}

func styleToProto(s model.StyleProfile) *pb.Style {
	return &pb.Style{
		Warmth:        s.Tone.Warmth,
		Formality:     s.Tone.Formality,
		Humor:         s.Tone.Humor,
		Flirtation:    s.Tone.Flirtation,
		SentenceLen:   string(s.Diction.SentenceLen),
		Metaphor:      s.Diction.Metaphor,
		Expansiveness: s.Pacing.Expansiveness,
		Assertiveness: s.Stance.Assertiveness,
		Nsfw:          s.Boundaries.NSFW,
		Sensitive:     string(s.Boundaries.Sensitive),
		Decoding:      decodingToProto(s.Decoding),
	}
}

func decodingToProto(d model.DecodingProfile) *pb.Decoding {
	return &pb.Decoding{
		Temp:      d.Temp,
		TopP:      d.TopP,
		TopK:      int32(d.TopK),
		Penalty:   d.Penalty,
		MaxTokens: int32(d.MaxTokens),
	}
}

func capsToProto(c model.BoundaryCaps) *pb.Boundaries {
	return &pb.Boundaries{
		MaxFlirtation: c.MaxFlirtation,
		MaxHumor:      c.MaxHumor,
		MaxCandor:     c.MaxCandor,
		MinFormality:  c.MinFormality,
		SafetyTags:    c.SafetyTags,
	}
}

// #endregion conversions

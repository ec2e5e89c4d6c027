// personactl talks to a running personad over gRPC: send events, read
// the current triad, screen content, and tag memories.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/rpc"
)

// #region main

func main() {
	addr := flag.String("addr", envOr("PERSONA_ADDR", "localhost:50061"), "personad gRPC address")

	eventType := flag.String("event", "", "apply an event of this type")
	intensity := flag.Float64("intensity", 0.5, "event intensity in [0,1]")
	audience := flag.String("audience", "", "audience type for the event (friend, child, ...)")
	channel := flag.String("channel", "", "channel type for the event (chat, email, ...)")
	private := flag.Bool("private", false, "mark the event channel private")

	summary := flag.Bool("summary", false, "print the personality summary")
	state := flag.Bool("state", false, "print the current affective state")
	reset := flag.Bool("reset", false, "reset the triad to baseline")
	safety := flag.String("safety", "", "screen this content against current boundaries")
	lens := flag.String("lens", "", "tag this memory content with affective lenses")
	memoryType := flag.String("memory-type", "interaction", "memory type for --lens")
	asJSON := flag.Bool("json", false, "print raw JSON instead of tables")
	flag.Parse()

	client, err := rpc.NewClient(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case *eventType != "":
		err = runEvent(ctx, client, *eventType, *intensity, *audience, *channel, *private, *asJSON)
	case *summary:
		err = runSummary(ctx, client, *asJSON)
	case *state:
		err = runState(ctx, client, *asJSON)
	case *reset:
		err = runReset(ctx, client)
	case *safety != "":
		err = runSafety(ctx, client, *safety, *asJSON)
	case *lens != "":
		err = runLens(ctx, client, *lens, *memoryType)
	default:
		fmt.Fprintln(os.Stderr, "usage: personactl [--addr host:port] --event TYPE [--intensity N] [--audience TYPE] [--channel TYPE] [--private]")
		fmt.Fprintln(os.Stderr, "       personactl --summary | --state | --reset | --safety CONTENT | --lens CONTENT [--memory-type TYPE]")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region modes

func runEvent(ctx context.Context, client *rpc.Client, eventType string, intensity float64, audience, channel string, private, asJSON bool) error {
	event := model.EventUpdate{
		EventType: model.EventType(eventType),
		Intensity: intensity,
		Timestamp: time.Now().UTC(),
	}
	if audience != "" {
		event.Audience = &model.AudienceContext{Type: model.AudienceType(audience)}
	}
	if channel != "" {
		event.Channel = &model.ChannelContext{Type: model.ChannelType(channel), IsPrivate: private}
	}

	result, err := client.ApplyEvent(ctx, event)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(result)
	}

	fmt.Printf("state: valence=%.3f arousal=%.3f fatigue=%.3f tags=%v\n",
		result.State.Valence, result.State.Arousal, result.State.Fatigue, result.State.Tags)
	fmt.Printf("style: warmth=%.3f formality=%.3f humor=%.3f assertiveness=%.3f\n",
		result.Style.Tone.Warmth, result.Style.Tone.Formality,
		result.Style.Tone.Humor, result.Style.Stance.Assertiveness)
	fmt.Printf("decoding: temp=%.3f top_p=%.3f top_k=%d penalty=%.3f max_tokens=%d\n",
		result.Style.Decoding.Temp, result.Style.Decoding.TopP, result.Style.Decoding.TopK,
		result.Style.Decoding.Penalty, result.Style.Decoding.MaxTokens)
	if result.DriftDetected {
		fmt.Printf("drift detected: magnitude=%.3f (corrected)\n", result.DriftMagnitude)
	}
	return nil
}

func runSummary(ctx context.Context, client *rpc.Client, asJSON bool) error {
	summary, err := client.Summary(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(summary)
	}

	fmt.Printf("traits: curiosity=%.2f balance=%.2f wit=%.2f candor=%.2f care=%.2f\n",
		summary.Traits.Curiosity, summary.Traits.Balance, summary.Traits.Wit,
		summary.Traits.Candor, summary.Traits.Care)
	fmt.Printf("mood: valence=%.3f arousal=%.3f fatigue=%.3f tags=%v\n",
		summary.CurrentMood.Valence, summary.CurrentMood.Arousal,
		summary.CurrentMood.Fatigue, summary.CurrentMood.Tags)
	fmt.Printf("style: warmth=%.3f formality=%.3f humor=%.3f assertiveness=%.3f\n",
		summary.CommunicationStyle.Warmth, summary.CommunicationStyle.Formality,
		summary.CommunicationStyle.Humor, summary.CommunicationStyle.Assertiveness)
	fmt.Printf("boundaries: max_flirtation=%.2f max_humor=%.2f tags=%v\n",
		summary.Boundaries.MaxFlirtation, summary.Boundaries.MaxHumor, summary.Boundaries.SafetyTags)
	fmt.Printf("stability: %.3f\n", summary.Stability)
	return nil
}

func runState(ctx context.Context, client *rpc.Client, asJSON bool) error {
	state, err := client.State(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(state)
	}
	fmt.Printf("valence=%.3f arousal=%.3f fatigue=%.3f decay=%.3f tags=%v\n",
		state.Valence, state.Arousal, state.Fatigue, state.Decay, state.Tags)
	return nil
}

func runReset(ctx context.Context, client *rpc.Client) error {
	profile, err := client.ResetToBaseline(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("reset to baseline: warmth=%.3f formality=%.3f humor=%.3f\n",
		profile.Tone.Warmth, profile.Tone.Formality, profile.Tone.Humor)
	return nil
}

func runSafety(ctx context.Context, client *rpc.Client, content string, asJSON bool) error {
	result, err := client.CheckContentSafety(ctx, content)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(result)
	}

	fmt.Printf("safe=%v risk=%s\n", result.Safe, result.RiskLevel)
	for _, v := range result.Violations {
		fmt.Printf("violation: %s\n", v)
	}
	for _, r := range result.Recommendations {
		fmt.Printf("recommend: %s\n", r)
	}
	return nil
}

func runLens(ctx context.Context, client *rpc.Client, content, memoryType string) error {
	lenses, err := client.TagMemory(ctx, content, memoryType)
	if err != nil {
		return err
	}
	for name, weight := range lenses {
		fmt.Printf("%-20s %.3f\n", name, weight)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion modes

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

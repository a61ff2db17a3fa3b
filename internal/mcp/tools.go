package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/clocky/internal/timeexpr"
	"github.com/gorewood/clocky/internal/timew"
)

// --- resolve_time ---

// ResolveTimeInput is the input for the resolve_time tool.
type ResolveTimeInput struct {
	Time    string `json:"time"               jsonschema:"clock time such as 9:00, 14:30, 6pm or 6:30 pm"`
	DaysAgo int    `json:"days_ago,omitempty" jsonschema:"days before today (0 = today)"`
}

// ResolveTimeOutput is the output for the resolve_time tool.
type ResolveTimeOutput struct {
	Clock     string `json:"clock"     jsonschema:"24-hour HH:MM:SS"`
	Timestamp string `json:"timestamp" jsonschema:"YYYYMMDDTHHMMSS as passed to timew"`
}

func handleResolveTime(deps Deps) mcp.ToolHandlerFor[ResolveTimeInput, ResolveTimeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveTimeInput) (*mcp.CallToolResult, ResolveTimeOutput, error) {
		clock, err := timeexpr.Resolve(input.Time)
		if err != nil {
			return nil, ResolveTimeOutput{}, err
		}
		stamp, err := timeexpr.BuildTimestamp(deps.Now(), input.DaysAgo, clock)
		if err != nil {
			return nil, ResolveTimeOutput{}, err
		}
		return nil, ResolveTimeOutput{Clock: clock, Timestamp: stamp}, nil
	}
}

// --- begin ---

// BeginInput is the input for the begin tool.
type BeginInput struct {
	Tags       []string `json:"tags,omitempty"       jsonschema:"tags for the new entry"`
	Annotation string   `json:"annotation,omitempty" jsonschema:"free-text annotation"`
}

// RemoteOutput carries what timew printed.
type RemoteOutput struct {
	Output string `json:"output" jsonschema:"combined output of the remote timew commands"`
}

func handleBegin(deps Deps) mcp.ToolHandlerFor[BeginInput, RemoteOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BeginInput) (*mcp.CallToolResult, RemoteOutput, error) {
		var buf bytes.Buffer
		client := deps.NewClient(&buf)
		err := client.Begin(ctx, timew.StartRequest{
			Tags:       cleanTags(input.Tags),
			Annotation: strings.TrimSpace(input.Annotation),
		})
		if err != nil {
			return nil, RemoteOutput{}, remoteFailure(err, &buf)
		}
		return nil, RemoteOutput{Output: buf.String()}, nil
	}
}

// --- track ---

// TrackInput is the input for the track tool.
type TrackInput struct {
	Tags       []string `json:"tags,omitempty"       jsonschema:"tags for the entry"`
	Annotation string   `json:"annotation,omitempty" jsonschema:"free-text description"`
	DaysAgo    int      `json:"days_ago,omitempty"   jsonschema:"days before today (0 = today)"`
	Start      string   `json:"start"                jsonschema:"start clock time, e.g. 9:00 or 9am"`
	End        string   `json:"end"                  jsonschema:"end clock time, e.g. 10:30 or 6pm"`
}

// TrackOutput is the output for the track tool.
type TrackOutput struct {
	Start  string `json:"start"  jsonschema:"resolved start timestamp"`
	End    string `json:"end"    jsonschema:"resolved end timestamp"`
	Output string `json:"output" jsonschema:"combined output of the remote timew commands"`
}

func handleTrack(deps Deps) mcp.ToolHandlerFor[TrackInput, TrackOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TrackInput) (*mcp.CallToolResult, TrackOutput, error) {
		now := deps.Now()
		start, err := timeexpr.ResolveTimestamp(now, input.DaysAgo, input.Start)
		if err != nil {
			return nil, TrackOutput{}, fmt.Errorf("start: %w", err)
		}
		end, err := timeexpr.ResolveTimestamp(now, input.DaysAgo, input.End)
		if err != nil {
			return nil, TrackOutput{}, fmt.Errorf("end: %w", err)
		}

		var buf bytes.Buffer
		client := deps.NewClient(&buf)
		err = client.Record(ctx, timew.TrackRequest{
			Tags:       cleanTags(input.Tags),
			Annotation: strings.TrimSpace(input.Annotation),
			Start:      start,
			End:        end,
		})
		if err != nil {
			return nil, TrackOutput{}, remoteFailure(err, &buf)
		}
		return nil, TrackOutput{Start: start, End: end, Output: buf.String()}, nil
	}
}

// cleanTags drops blank tags; each remaining tag stays one remote argument.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// remoteFailure attaches what timew printed, since the agent cannot see a terminal.
func remoteFailure(err error, buf *bytes.Buffer) error {
	if text := strings.TrimSpace(buf.String()); text != "" {
		return fmt.Errorf("%w\n%s", err, text)
	}
	return err
}

package mcp

import (
	"context"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/clocky/internal/output"
	"github.com/gorewood/clocky/internal/remote"
	"github.com/gorewood/clocky/internal/timeexpr"
	"github.com/gorewood/clocky/internal/timew"
)

// --- Fake runner ---

type fakeRunner struct {
	out   io.Writer
	reply string
	codes map[int]int
	lines *[]string
}

func (f *fakeRunner) Run(_ context.Context, commandLine string) error {
	*f.lines = append(*f.lines, commandLine)
	_, _ = io.WriteString(f.out, f.reply)
	if code := f.codes[len(*f.lines)-1]; code != 0 {
		status := &remote.StatusError{Host: "chum", CommandLine: commandLine, Code: code}
		return output.NewRemoteError(code, status.Error(), status)
	}
	return nil
}

// --- Test helpers ---

func testDeps(reply string, codes map[int]int) (Deps, *[]string) {
	lines := &[]string{}
	deps := Deps{
		NewClient: func(out io.Writer) *timew.Client {
			return timew.NewClient(&fakeRunner{out: out, reply: reply, codes: codes, lines: lines}, "", nil)
		},
		Now: func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) },
	}
	return deps, lines
}

// --- resolve_time handler tests ---

func TestHandleResolveTime(t *testing.T) {
	deps, _ := testDeps("", nil)
	handler := handleResolveTime(deps)

	tests := []struct {
		name  string
		input ResolveTimeInput
		want  ResolveTimeOutput
	}{
		{name: "today", input: ResolveTimeInput{Time: "6:30 pm"}, want: ResolveTimeOutput{Clock: "18:30:00", Timestamp: "20240501T183000"}},
		{name: "two days ago", input: ResolveTimeInput{Time: "9:00", DaysAgo: 2}, want: ResolveTimeOutput{Clock: "09:00:00", Timestamp: "20240429T090000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHandleResolveTime_Errors(t *testing.T) {
	deps, _ := testDeps("", nil)
	handler := handleResolveTime(deps)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ResolveTimeInput{Time: "noonish"})
	assert.ErrorIs(t, err, timeexpr.ErrMalformedTimeInput)

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, ResolveTimeInput{Time: "9:00", DaysAgo: -1})
	assert.ErrorIs(t, err, timeexpr.ErrInvalidDayOffset)
}

// --- begin handler tests ---

func TestHandleBegin(t *testing.T) {
	deps, lines := testDeps("Tracking work\n", nil)
	handler := handleBegin(deps)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, BeginInput{
		Tags:       []string{"work", " ", "bar baz"},
		Annotation: "  pairing  ",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"timew start work 'bar baz'", "timew annotate @1 pairing"}, *lines)
	assert.Equal(t, "Tracking work\nTracking work\n", out.Output)
}

func TestHandleBegin_RemoteFailureIncludesOutput(t *testing.T) {
	deps, lines := testDeps("There is no active time tracking.\n", map[int]int{0: 255})
	handler := handleBegin(deps)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, BeginInput{Tags: []string{"work"}})
	require.Error(t, err)
	assert.Len(t, *lines, 1)
	assert.Equal(t, 255, output.GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to start time entry")
	assert.Contains(t, err.Error(), "There is no active time tracking.")
}

// --- track handler tests ---

func TestHandleTrack(t *testing.T) {
	deps, lines := testDeps("", nil)
	handler := handleTrack(deps)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, TrackInput{
		Tags:       []string{"work"},
		Annotation: "standup",
		DaysAgo:    1,
		Start:      "9am",
		End:        "9:15am",
	})
	require.NoError(t, err)
	assert.Equal(t, "20240430T090000", out.Start)
	assert.Equal(t, "20240430T091500", out.End)
	assert.Equal(t, []string{
		"timew track 20240430T090000 - 20240430T091500 work",
		"timew annotate @1 standup",
	}, *lines)
}

func TestHandleTrack_MalformedTimeMakesNoCalls(t *testing.T) {
	tests := []struct {
		name    string
		input   TrackInput
		wantMsg string
	}{
		{name: "start", input: TrackInput{Start: "soon", End: "10:00"}, wantMsg: "start: "},
		{name: "end", input: TrackInput{Start: "9:00", End: "25:00"}, wantMsg: "end: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, lines := testDeps("", nil)
			_, _, err := handleTrack(deps)(context.Background(), &mcp.CallToolRequest{}, tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, timeexpr.ErrMalformedTimeInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, *lines)
		})
	}
}

func TestCleanTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, cleanTags([]string{" a ", "", "b c", "  "}))
	assert.Empty(t, cleanTags(nil))
}

// --- server tests ---

func TestNewServer_RegistersTools(t *testing.T) {
	deps, _ := testDeps("", nil)
	server := NewServer("test-version", deps)
	require.NotNil(t, server)

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"begin", "resolve_time", "track"}, names)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "resolve_time",
		Arguments: map[string]any{"time": "6pm"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError, fmt.Sprint(result.Content))
}

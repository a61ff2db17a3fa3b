package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/clocky/internal/output"
	"github.com/gorewood/clocky/internal/timeexpr"
)

func TestAdd_TracksThenAnnotates(t *testing.T) {
	ssh := &fakeSSH{}
	out, err := execute(t, newTestApp(ssh), "work\nstandup\n0\n9:00\n10:30\n", "add")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"timew track 20240501T090000 - 20240501T103000 work",
		"timew annotate @1 standup",
	}, ssh.lines())
	assert.Contains(t, out, "Days ago (0 = today): ")
	assert.Contains(t, out, "✓ Tracked work\n  Start: 20240501T090000\n  End: 20240501T103000\n")
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		codes     map[int]int
		wantLines []string
		wantCode  int
	}{
		{
			name:      "days ago and 12-hour times",
			stdin:     "client call\n\n2\n2pm\n3:15 PM\n",
			wantLines: []string{"timew track 20240429T140000 - 20240429T151500 client call"},
		},
		{
			name:      "blank offset means today",
			stdin:     "work\n\n\n08:00:00\n6:30pm\n",
			wantLines: []string{"timew track 20240501T080000 - 20240501T183000 work"},
		},
		{
			name:      "description is one argument",
			stdin:     "work\nfix the build\n0\n9:00\n10:00\n",
			wantLines: []string{"timew track 20240501T090000 - 20240501T100000 work", "timew annotate @1 'fix the build'"},
		},
		{
			name:      "track failure skips annotation",
			stdin:     "work\nstandup\n0\n9:00\n10:30\n",
			codes:     map[int]int{0: 2},
			wantLines: []string{"timew track 20240501T090000 - 20240501T103000 work"},
			wantCode:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ssh := &fakeSSH{codes: tt.codes}
			_, err := execute(t, newTestApp(ssh), tt.stdin, "add")

			assert.Equal(t, tt.wantLines, ssh.lines())
			assert.Equal(t, tt.wantCode, output.GetExitCode(err))
		})
	}
}

func TestAdd_TrackFailureMessage(t *testing.T) {
	ssh := &fakeSSH{codes: map[int]int{0: 1}}
	_, err := execute(t, newTestApp(ssh), "work\n\n0\n9:00\n10:30\n", "add")

	require.Error(t, err)
	assert.Equal(t, "failed to track time entry", err.Error())
}

func TestAdd_BadInputMakesNoRemoteCalls(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		wantErr error
	}{
		{name: "malformed start", stdin: "work\n\n0\nnine\n10:30\n", wantErr: timeexpr.ErrMalformedTimeInput},
		{name: "malformed end", stdin: "work\n\n0\n9:00\nlater\n", wantErr: timeexpr.ErrMalformedTimeInput},
		{name: "hour out of range", stdin: "work\n\n0\n9:00\n13pm\n", wantErr: timeexpr.ErrMalformedTimeInput},
		{name: "negative offset", stdin: "work\n\n-1\n", wantErr: timeexpr.ErrInvalidDayOffset},
		{name: "non-numeric offset", stdin: "work\n\nyesterday\n", wantErr: timeexpr.ErrInvalidDayOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ssh := &fakeSSH{}
			_, err := execute(t, newTestApp(ssh), tt.stdin, "add")

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 1, output.GetExitCode(err))
			assert.Empty(t, ssh.calls)
		})
	}
}

package notebook

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notebook.md")
	nb := New(path, WithClock(fixedClock()))

	_, err := nb.Read()
	assert.True(t, scierr.HasCode(err, scierr.CodeNotFound))

	e, err := nb.Append("first run  \n")
	require.NoError(t, err)
	assert.Equal(t, "first run", e.Text)

	_, err = nb.Append("second\nrun")
	require.NoError(t, err)

	content, err := nb.Read()
	require.NoError(t, err)
	assert.Equal(t,
		"- [2024-06-01T10:01:00] first run\n- [2024-06-01T10:02:00] second run\n",
		content)
}

func TestAppendErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir).Append("cannot open a directory for writing")
	require.Error(t, err)
	assert.True(t, scierr.HasCode(err, scierr.CodeIOError))

	var sciErr *scierr.Error
	require.ErrorAs(t, err, &sciErr)
	assert.Equal(t, dir, sciErr.Details()["path"])

	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = New(filepath.Join(blocker, "notebook.md")).Append("parent is a file")
	assert.True(t, scierr.HasCode(err, scierr.CodeIOError))
}

func TestEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.md")
	body := strings.Join([]string{
		"# Lab notebook",
		"- [2024-06-01T10:00:00] calibrated balance",
		"free text the user typed",
		"- [2024-06-01T11:30:15] Molarity: Molarity = 0.5 M",
		"- [not a time] skipped",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	entries, err := New(path).Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "calibrated balance", entries[0].Text)
	assert.Equal(t, 11, entries[1].Time.Hour())
	assert.Equal(t, 15, entries[1].Time.Second())

	_, err = New(filepath.Join(t.TempDir(), "missing.md")).Entries()
	assert.True(t, scierr.HasCode(err, scierr.CodeNotFound))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"- [2024-01-02T03:04:05] hello", "hello", true},
		{"- [2024-01-02T03:04:05] ", "", true},
		{"- [2024-01-02T03:04:05]", "", true},
		{"- [2024-01-02T03:04:05] a ] b", "a ] b", true},
		{"* [2024-01-02T03:04:05] hello", "", false},
		{"- [2024-01-02] hello", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLine(tt.line)
		assert.Equal(t, tt.wantOK, ok, "line %q", tt.line)
		assert.Equal(t, tt.want, got.Text, "line %q", tt.line)
	}
}

func TestEntryLineRoundTrip(t *testing.T) {
	e := Entry{Time: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local), Text: "note"}
	got, ok := ParseLine(e.Line())
	require.True(t, ok)
	assert.True(t, e.Time.Equal(got.Time))
	assert.Equal(t, e.Text, got.Text)
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.md")
	nb := New(path)
	_, err := nb.Append("before follow")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan Entry, 16)
	done := make(chan error, 1)
	go func() {
		done <- nb.Follow(ctx, func(e Entry) {
			select {
			case got <- e:
			default:
			}
		})
	}()

	// the watcher may not be registered yet, keep writing until it sees one
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	var first Entry
wait:
	for {
		select {
		case first = <-got:
			break wait
		case <-tick.C:
			_, err := nb.Append("during follow")
			require.NoError(t, err)
		case <-deadline:
			cancel()
			<-done
			t.Fatal("no entry observed")
		}
	}

	assert.Equal(t, "during follow", first.Text)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Follow did not return after cancel")
	}
}

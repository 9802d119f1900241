// Package notebook keeps the lab notebook: an append-only Markdown file
// with one timestamped bullet per entry.
//
//	- [2024-06-01T10:00:00] titration run 3, endpoint at 12.4 mL
//
// Every Append opens, writes and closes the file, so concurrent writers
// from separate processes are not coordinated.
package notebook

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// TimestampLayout is the entry timestamp format, local time to the second.
const TimestampLayout = "2006-01-02T15:04:05"

// Entry is one notebook line.
type Entry struct {
	Time time.Time `json:"time" yaml:"time"`
	Text string    `json:"text" yaml:"text"`
}

// Line renders the entry as it is stored.
func (e Entry) Line() string {
	return "- [" + e.Time.Format(TimestampLayout) + "] " + e.Text
}

// ParseLine parses a stored entry line. ok is false for lines that are not
// entries.
func ParseLine(line string) (Entry, bool) {
	rest, found := strings.CutPrefix(strings.TrimRight(line, "\r\n"), "- [")
	if !found {
		return Entry{}, false
	}
	stamp, text, found := strings.Cut(rest, "] ")
	if !found {
		stamp, found = strings.CutSuffix(rest, "]")
		if !found {
			return Entry{}, false
		}
	}
	t, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Time: t, Text: text}, true
}

// Notebook appends to and reads from one notebook file.
type Notebook struct {
	path   string
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Notebook.
type Option func(*Notebook)

// WithClock overrides the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Notebook) { n.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(n *Notebook) { n.logger = l }
}

// New returns a notebook stored at path. The file is created on first
// Append.
func New(path string, opts ...Option) *Notebook {
	n := &Notebook{path: path, now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.Named("notebook")
	return n
}

// Path returns the notebook file path.
func (n *Notebook) Path() string {
	return n.path
}

// Append writes a timestamped entry. Parent directories are created and
// line breaks inside text are folded to spaces.
func (n *Notebook) Append(text string) (Entry, error) {
	text = strings.TrimRight(text, " \t\r\n")
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
	entry := Entry{Time: n.now().Truncate(time.Second), Text: text}

	if err := os.MkdirAll(filepath.Dir(n.path), 0o755); err != nil {
		return Entry{}, scierr.Wrap(err, "failed to create notebook directory").
			WithCode(scierr.CodeIOError).WithDetail("path", n.path)
	}

	f, err := os.OpenFile(n.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Entry{}, scierr.Wrap(err, "failed to open notebook").
			WithCode(scierr.CodeIOError).WithDetail("path", n.path)
	}

	if _, err := io.WriteString(f, entry.Line()+"\n"); err != nil {
		f.Close()
		return Entry{}, scierr.Wrap(err, "failed to write notebook entry").
			WithCode(scierr.CodeIOError).WithDetail("path", n.path)
	}
	if err := f.Close(); err != nil {
		return Entry{}, scierr.Wrap(err, "failed to close notebook").
			WithCode(scierr.CodeIOError).WithDetail("path", n.path)
	}

	n.logger.Debug("entry appended", zap.String("path", n.path), zap.Int("length", len(text)))
	return entry, nil
}

// Read returns the whole notebook. A notebook that was never written
// fails with NOT_FOUND.
func (n *Notebook) Read() (string, error) {
	data, err := os.ReadFile(n.path)
	if err != nil {
		return "", n.readError(err)
	}
	return string(data), nil
}

// Entries parses the notebook into entries in file order, skipping lines
// that are not entries.
func (n *Notebook) Entries() ([]Entry, error) {
	f, err := os.Open(n.path)
	if err != nil {
		return nil, n.readError(err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if e, ok := ParseLine(sc.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, scierr.Wrap(err, "failed to read notebook").WithCode(scierr.CodeIOError)
	}
	return entries, nil
}

func (n *Notebook) readError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return scierr.Newf("notebook is empty (file not found): %s", n.path).
			WithCode(scierr.CodeNotFound).WithDetail("path", n.path)
	}
	return scierr.Wrap(err, "failed to read notebook").WithCode(scierr.CodeIOError).WithDetail("path", n.path)
}

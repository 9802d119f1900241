package notebook

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// Follow calls fn for every entry appended to the notebook after Follow
// starts, until ctx is done. It watches the notebook directory so a file
// that does not exist yet is picked up once created.
func (n *Notebook) Follow(ctx context.Context, fn func(Entry)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return scierr.Wrap(err, "failed to create file watcher").WithCode(scierr.CodeIOError)
	}
	defer watcher.Close()

	dir := filepath.Dir(n.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return scierr.Wrap(err, "failed to create notebook directory").WithCode(scierr.CodeIOError)
	}
	if err := watcher.Add(dir); err != nil {
		return scierr.Wrap(err, "failed to watch notebook directory").
			WithCode(scierr.CodeIOError).WithDetail("dir", dir)
	}

	var offset int64
	if info, err := os.Stat(n.path); err == nil {
		offset = info.Size()
	}
	target := filepath.Clean(n.path)
	n.logger.Debug("following notebook", zap.String("path", n.path), zap.Int64("offset", offset))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				offset, err = n.readFrom(offset, fn)
				if err != nil {
					return err
				}
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				offset = 0
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return scierr.Wrap(err, "notebook watcher failed").WithCode(scierr.CodeIOError)
		}
	}
}

// readFrom emits the complete lines written after offset and returns the
// offset just past the last complete line.
func (n *Notebook) readFrom(offset int64, fn func(Entry)) (int64, error) {
	f, err := os.Open(n.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return offset, scierr.Wrap(err, "failed to open notebook").WithCode(scierr.CodeIOError)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return offset, scierr.Wrap(err, "failed to stat notebook").WithCode(scierr.CodeIOError)
	}
	if info.Size() < offset {
		offset = 0
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, scierr.Wrap(err, "failed to seek notebook").WithCode(scierr.CodeIOError)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return offset, scierr.Wrap(err, "failed to read notebook").WithCode(scierr.CodeIOError)
	}
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return offset, nil
	}

	for _, line := range bytes.Split(data[:end], []byte{'\n'}) {
		if e, ok := ParseLine(string(line)); ok {
			fn(e)
		}
	}
	return offset + int64(end) + 1, nil
}

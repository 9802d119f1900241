package bio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

// ReadSequence reads a FASTA or plain sequence. Header lines starting with
// '>' are skipped and all records are concatenated.
func ReadSequence(r io.Reader) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return "", scierr.Wrap(err, "failed to read sequence").WithCode(scierr.CodeIOError)
	}
	return Normalize(b.String()), nil
}

// ReadSequenceFile reads a sequence from path. An empty result is an
// error.
func ReadSequenceFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", scierr.Newf("file not found: %s", path).WithCode(scierr.CodeNotFound)
		}
		return "", scierr.Wrap(err, "failed to open sequence file").WithCode(scierr.CodeIOError).WithDetail("path", path)
	}
	defer f.Close()

	seq, err := ReadSequence(f)
	if err != nil {
		return "", err
	}
	if seq == "" {
		return "", scierr.InvalidInput("no sequence data found in %s", path)
	}
	return seq, nil
}

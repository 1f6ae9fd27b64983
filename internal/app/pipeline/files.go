package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/fragment"
)

// readFile opens path, strips a UTF-8 BOM, and passes the stream to fn.
// The file is closed on every return path.
func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return fn(fragment.NewReader(f))
}

// writeFile creates (or truncates) path and passes a buffered writer to fn.
// The buffer is flushed and the file closed on every return path; flush and
// close errors are reported when fn itself succeeded.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// convertFile streams in through conv into out.
func convertFile(in, out string, conv func(r io.Reader, w io.Writer) error) error {
	return readFile(in, func(r io.Reader) error {
		return writeFile(out, func(w io.Writer) error {
			return conv(r, w)
		})
	})
}

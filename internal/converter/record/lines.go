package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EachLine calls fn for every line of r with the line terminator ("\n" or
// "\r\n") removed. lineNum is 1-based. Lines have no length limit. A final
// line without a terminator is still delivered; an empty input yields no
// calls. Read errors are wrapped with the line number; errors from fn are
// returned unchanged.
func EachLine(r io.Reader, fn func(lineNum int, line string) error) error {
	br := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read line %d: %w", lineNum, err)
		}
		if line == "" && err != nil {
			return nil
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if ferr := fn(lineNum, line); ferr != nil {
			return ferr
		}
		if err != nil {
			return nil
		}
	}
}

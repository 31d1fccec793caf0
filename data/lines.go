package data

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize bounds a single line accepted by ReadLines.
const MaxLineSize = 1 << 20

// ReadLines parses one sequence per non-blank line of r.
func ReadLines(r io.Reader, enc Encoding) ([]Sequence, error) {
	out := make([]Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := Parse(line, enc)
		if err != nil {
			var de *DecodingError
			if errors.As(err, &de) {
				de.Line = n
			}
			return nil, err
		}
		out = append(out, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n+1, err)
	}
	return out, nil
}

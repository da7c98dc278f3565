// SPDX-License-Identifier: MIT

package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/oqs/sparse"
)

// Decode parses a size×size operator from r.
// Duplicate coordinates accumulate. Indices outside the matrix report
// sparse.ErrOutOfRange; unparsable lines report ErrMalformedLine.
func Decode(r io.Reader, size int) (*sparse.CSR, error) {
	if size <= 0 {
		return nil, fmt.Errorf("fixture.Decode: %w (got %d)", ErrBadSize, size)
	}
	b, err := sparse.NewBuilder(size, size)
	if err != nil {
		return nil, fmt.Errorf("fixture.Decode: %w", err)
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		i, j, v, err := parseTriple(text)
		if err != nil {
			return nil, fmt.Errorf("fixture.Decode: line %d: %w", line, err)
		}
		if err = b.Add(i, j, v); err != nil {
			return nil, fmt.Errorf("fixture.Decode: line %d: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("fixture.Decode: %w", err)
	}

	return b.Build(), nil
}

// parseTriple splits "row col value" or "row col re im".
func parseTriple(text string) (int, int, complex128, error) {
	f := strings.Fields(text)
	if len(f) != 3 && len(f) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedLine, len(f))
	}
	i, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: row %q", ErrMalformedLine, f[0])
	}
	j, err := strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: column %q", ErrMalformedLine, f[1])
	}
	re, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: value %q", ErrMalformedLine, f[2])
	}
	var im float64
	if len(f) == 4 {
		if im, err = strconv.ParseFloat(f[3], 64); err != nil {
			return 0, 0, 0, fmt.Errorf("%w: imaginary part %q", ErrMalformedLine, f[3])
		}
	}

	return i, j, complex(re, im), nil
}

// Encode writes m in row-major order. Entries with a zero imaginary part
// are written as triples, the rest with a fourth column. Floats use the
// shortest representation that round-trips.
func Encode(w io.Writer, m *sparse.CSR) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("fixture.Encode: %w", err)
	}
	bw := bufio.NewWriter(w)
	for _, t := range m.Triples() {
		line := strconv.Itoa(t.Row) + " " + strconv.Itoa(t.Col) + " " + formatFloat(real(t.Val))
		if imag(t.Val) != 0 {
			line += " " + formatFloat(imag(t.Val))
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("fixture.Encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fixture.Encode: %w", err)
	}

	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// LoadFile decodes the fixture at path as a size×size operator.
func LoadFile(path string, size int) (*sparse.CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture.LoadFile: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, size)
	if err != nil {
		return nil, fmt.Errorf("fixture.LoadFile %s: %w", path, err)
	}

	return m, nil
}

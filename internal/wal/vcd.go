package wal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Loader resolves a file path to a loaded trace.
type Loader interface {
	Load(path string) (*Trace, error)
}

// VCDLoader loads Value Change Dump (.vcd) files, transparently unwrapping
// gzip-compressed input (.vcd.gz).
type VCDLoader struct{}

// Load opens and parses the waveform file at path.
func (VCDLoader) Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	trace, err := ParseVCD(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return trace, nil
}

// ParseVCD parses a VCD stream into a trace. Each timestamp marker in the
// dump becomes one time index; signal values carry forward between changes.
// Signal names are the dotted join of the scope hierarchy and the declared
// variable name.
func ParseVCD(r io.Reader) (*Trace, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	var (
		signals []Signal
		scopes  []string
		idOf    = map[string][]int{} // VCD id code -> signal positions
		current []string
		samples [][]string
		pending bool
	)

	commit := func() {
		if !pending {
			return
		}
		row := make([]string, len(current))
		copy(row, current)
		samples = append(samples, row)
		pending = false
	}

	skipToEnd := func() error {
		for sc.Scan() {
			if sc.Text() == "$end" {
				return nil
			}
		}
		return fmt.Errorf("unterminated directive")
	}

	headerDone := false
	for sc.Scan() {
		tok := sc.Text()

		if !headerDone {
			switch tok {
			case "$scope":
				// $scope <type> <name> $end
				if !sc.Scan() || !sc.Scan() {
					return nil, fmt.Errorf("malformed $scope")
				}
				scopes = append(scopes, sc.Text())
				if err := skipToEnd(); err != nil {
					return nil, err
				}
			case "$upscope":
				if len(scopes) > 0 {
					scopes = scopes[:len(scopes)-1]
				}
				if err := skipToEnd(); err != nil {
					return nil, err
				}
			case "$var":
				// $var <type> <width> <id> <name> [range] $end
				var fields []string
				for sc.Scan() && sc.Text() != "$end" {
					fields = append(fields, sc.Text())
				}
				if len(fields) < 4 {
					return nil, fmt.Errorf("malformed $var declaration")
				}
				width, err := strconv.Atoi(fields[1])
				if err != nil || width <= 0 {
					return nil, fmt.Errorf("bad width %q in $var", fields[1])
				}
				id, name := fields[2], fields[3]
				full := name
				if len(scopes) > 0 {
					full = strings.Join(scopes, ".") + "." + name
				}
				signals = append(signals, Signal{Name: full, Width: width})
				idOf[id] = append(idOf[id], len(signals)-1)
				current = append(current, "x")
			case "$enddefinitions":
				if err := skipToEnd(); err != nil {
					return nil, err
				}
				headerDone = true
			default:
				if strings.HasPrefix(tok, "$") {
					// $date, $version, $timescale, $comment
					if err := skipToEnd(); err != nil {
						return nil, err
					}
				}
			}
			continue
		}

		switch {
		case strings.HasPrefix(tok, "#"):
			commit()
			pending = true
		case tok == "$dumpvars" || tok == "$dumpall" || tok == "$dumpon" || tok == "$dumpoff" || tok == "$end":
			// section markers around initial value dumps
		case strings.HasPrefix(tok, "$"):
			if err := skipToEnd(); err != nil {
				return nil, err
			}
		case len(tok) >= 2 && strings.ContainsRune("01xzXZ", rune(tok[0])):
			// scalar change: <value><id>
			applyChange(idOf, current, tok[1:], strings.ToLower(tok[:1]))
		case len(tok) >= 1 && (tok[0] == 'b' || tok[0] == 'B' || tok[0] == 'r' || tok[0] == 'R'):
			// vector change: <b|r><value> <id>
			val := normalizeVector(tok[1:])
			if !sc.Scan() {
				return nil, fmt.Errorf("vector change without id code")
			}
			applyChange(idOf, current, sc.Text(), val)
		default:
			return nil, fmt.Errorf("unexpected token %q in dump section", tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	commit()

	if len(signals) == 0 {
		return nil, fmt.Errorf("no signal declarations found")
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no value changes found")
	}
	return NewTrace(signals, samples)
}

func applyChange(idOf map[string][]int, current []string, id, value string) {
	for _, pos := range idOf[id] {
		current[pos] = value
	}
}

// normalizeVector converts a clean binary vector to decimal text. Vectors
// containing x or z bits stay as-is, lowered.
func normalizeVector(bits string) string {
	lowered := strings.ToLower(bits)
	if n, err := strconv.ParseUint(lowered, 2, 64); err == nil {
		return strconv.FormatUint(n, 10)
	}
	return lowered
}

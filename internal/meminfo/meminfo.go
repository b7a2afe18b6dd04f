// Package meminfo extracts memory figures from the kernel meminfo file, a
// line-oriented "Label:   value kB" format.
package meminfo

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is the kernel-exposed meminfo file on Linux.
const DefaultPath = "/proc/meminfo"

var (
	// ErrLabelNotFound means no line in the source starts with the label.
	ErrLabelNotFound = errors.New("label not found")
	// ErrAmbiguousLabel means more than one line starts with the label.
	ErrAmbiguousLabel = errors.New("label matched more than one line")
)

// Snapshot holds the two figures the check consumes, in kB as reported
// by the kernel.
type Snapshot struct {
	TotalKB     uint64
	AvailableKB uint64
}

// Reader reads a meminfo-format file from a fixed path.
type Reader struct {
	path string
}

// NewReader creates a reader for the given path; an empty path selects
// DefaultPath.
func NewReader(path string) *Reader {
	if path == "" {
		path = DefaultPath
	}
	return &Reader{path: path}
}

// Path returns the source path the reader opens.
func (r *Reader) Path() string {
	return r.path
}

// Read opens the source, extracts MemTotal and MemAvailable, and closes it
// on every path. Any failure identifies the source path or the missing
// label.
func (r *Reader) Read() (Snapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read %s: %w", r.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("cannot read %s: %w", r.path, err)
	}

	total, err := GetValue(lines, "MemTotal")
	if err != nil {
		return Snapshot{}, err
	}
	available, err := GetValue(lines, "MemAvailable")
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{TotalKB: total, AvailableKB: available}, nil
}

// GetValue locates exactly one line starting with label and returns the
// first run of digits after the colon as a non-negative integer. Zero or
// multiple matching lines is an error, as is a non-numeric value.
func GetValue(lines []string, label string) (uint64, error) {
	match := ""
	found := false
	for _, line := range lines {
		if !strings.HasPrefix(line, label) {
			continue
		}
		if found {
			return 0, fmt.Errorf("%s: %w", label, ErrAmbiguousLabel)
		}
		match = line
		found = true
	}
	if !found {
		return 0, fmt.Errorf("%s: %w", label, ErrLabelNotFound)
	}

	rest := match[len(label):]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return 0, fmt.Errorf("%s: malformed line %q", label, match)
	}
	rest = strings.TrimLeft(rest[colon+1:], " \t")

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%s: no numeric value in line %q", label, match)
	}
	value, err := strconv.ParseUint(rest[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid value %q: %w", label, rest[:end], err)
	}
	return value, nil
}

package meminfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	lines := []string{
		"MemTotal:       16384000 kB",
		"MemFree: 1000 kB",
	}
	value, err := GetValue(lines, "MemTotal")
	require.NoError(t, err)
	assert.Equal(t, uint64(16384000), value)
}

func TestGetValueAbsentLabel(t *testing.T) {
	lines := []string{"MemTotal: 1000 kB"}
	_, err := GetValue(lines, "MemAvailable")
	assert.ErrorIs(t, err, ErrLabelNotFound)
}

func TestGetValueAmbiguousLabel(t *testing.T) {
	lines := []string{
		"MemTotal: 1000 kB",
		"MemTotal: 2000 kB",
	}
	_, err := GetValue(lines, "MemTotal")
	assert.ErrorIs(t, err, ErrAmbiguousLabel)
}

func TestGetValueMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no colon", "MemTotal 1000 kB"},
		{"no number", "MemTotal:  kB"},
		{"negative", "MemTotal: -5 kB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetValue([]string{tt.line}, "MemTotal")
			assert.Error(t, err)
		})
	}
}

func TestGetValueZero(t *testing.T) {
	value, err := GetValue([]string{"MemAvailable: 0 kB"}, "MemAvailable")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), value)
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReaderRead(t *testing.T) {
	path := writeFixture(t, "MemTotal:       1000000 kB\nSwapTotal: 0 kB\nMemAvailable:   150000 kB\n")
	snapshot, err := NewReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, Snapshot{TotalKB: 1000000, AvailableKB: 150000}, snapshot)
}

func TestReaderReadIdempotent(t *testing.T) {
	path := writeFixture(t, "MemTotal: 500 kB\nMemAvailable: 100 kB\n")
	reader := NewReader(path)
	first, err := reader.Read()
	require.NoError(t, err)
	second, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReaderReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")
	_, err := NewReader(path).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestReaderReadMissingLabel(t *testing.T) {
	path := writeFixture(t, "MemTotal: 500 kB\n")
	_, err := NewReader(path).Read()
	assert.ErrorIs(t, err, ErrLabelNotFound)
}

func TestNewReaderDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewReader("").Path())
	assert.Equal(t, "/tmp/meminfo", NewReader("/tmp/meminfo").Path())
}

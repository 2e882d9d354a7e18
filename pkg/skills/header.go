package skills

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
)

var (
	// ErrNoHeader is returned when the content does not open with a fence
	ErrNoHeader = errors.New("no header block found")
	// ErrUnterminatedHeader is returned when the opening fence has no matching closing fence
	ErrUnterminatedHeader = errors.New("header block is not terminated")
)

// Header is an ordered set of header fields. Keys keep the position of their
// first appearance; a repeated key overwrites the earlier value.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader returns an empty header
func NewHeader() *Header {
	return &Header{values: make(map[string]string)}
}

// Set stores value under key
func (h *Header) Set(key, value string) {
	if _, exists := h.values[key]; !exists {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value for key and whether it was present
func (h *Header) Get(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Has reports whether key was present in the block
func (h *Header) Has(key string) bool {
	_, ok := h.values[key]
	return ok
}

// Keys returns the keys in order of first appearance
func (h *Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Len returns the number of distinct keys
func (h *Header) Len() int {
	return len(h.keys)
}

// UnknownKeys returns the keys that are not recognised, in order of first appearance
func (h *Header) UnknownKeys() []string {
	var unknown []string
	for _, k := range h.keys {
		if !IsAllowedKey(k) {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

// Metadata decodes the header into its typed form. Unknown keys are ignored.
func (h *Header) Metadata() (Metadata, error) {
	var md Metadata
	if err := mapstructure.Decode(h.values, &md); err != nil {
		return Metadata{}, errors.Wrap(err, "failed to decode header")
	}
	return md, nil
}

// ExtractHeader returns the interior of the header block and the body that
// follows it. The first line must be exactly "---"; the block ends at the
// next line that is exactly "---". A trailing carriage return on either fence
// line is tolerated.
func ExtractHeader(content string) (string, string, error) {
	if !strings.HasPrefix(content, headerFence) {
		return "", "", ErrNoHeader
	}

	lines := strings.Split(content, "\n")
	if strings.TrimSuffix(lines[0], "\r") != headerFence {
		return "", "", ErrUnterminatedHeader
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSuffix(lines[i], "\r") == headerFence {
			block := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return block, body, nil
		}
	}

	return "", "", ErrUnterminatedHeader
}

// ParseHeader parses the interior of a header block. Every non-empty line is
// split at its first colon into a trimmed key and value; lines without a
// colon are skipped. Any block parses, however long its lines.
func ParseHeader(block string) *Header {
	h := NewHeader()

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		h.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return h
}

// ReadHeader reads the SKILL.md in dir and parses its header block. The raw
// file content is returned alongside the header.
func ReadHeader(dir string) (*Header, string, error) {
	content, err := lockedfile.Read(filepath.Join(dir, skillFileName))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read skill file")
	}

	block, _, err := ExtractHeader(string(content))
	if err != nil {
		return nil, string(content), err
	}

	return ParseHeader(block), string(content), nil
}

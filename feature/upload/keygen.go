package upload

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// KeyGenerator derives object keys of the form
// {prefix}/{YYYY}/{MM}/{DD}/{32 hex}_{sanitized name}.
type KeyGenerator struct {
	prefix string
	now    func() time.Time
	newID  func() string
}

// NewKeyGenerator creates a generator for the given prefix.
// Leading and trailing slashes are trimmed from the prefix.
func NewKeyGenerator(prefix string) *KeyGenerator {
	return &KeyGenerator{
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
		newID:  randomHex,
	}
}

// Generate returns a fresh key for fileName.
func (g *KeyGenerator) Generate(fileName string) string {
	name := g.newID() + "_" + SanitizeFileName(fileName)
	datePath := g.now().UTC().Format("2006/01/02")
	if g.prefix == "" {
		return datePath + "/" + name
	}
	return g.prefix + "/" + datePath + "/" + name
}

// SanitizeFileName keeps the last path segment of name and replaces every
// character outside [A-Za-z0-9._-] with an underscore. Both / and \ count as
// separators. An empty result becomes "file".
func SanitizeFileName(name string) string {
	base := ""
	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "." {
			base = segments[i]
			break
		}
	}

	safe := unsafeChars.ReplaceAllString(base, "_")
	if safe == "" {
		return "file"
	}
	return safe
}

// randomHex returns 128 random bits as 32 lowercase hex digits.
func randomHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

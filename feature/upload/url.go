package upload

import (
	"strings"

	"minio-upload/core/storage"
)

const upperhex = "0123456789ABCDEF"

// ObjectURL builds a browsable URL for an object. It returns an empty string
// when no endpoint is configured.
func ObjectURL(cfg storage.Config, bucket, objectName string) string {
	host := cfg.Host()
	if host == "" {
		return ""
	}
	return cfg.Scheme() + "://" + host + "/" + bucket + "/" + escapeKey(objectName)
}

// escapeKey percent-encodes every byte outside the unreserved set,
// leaving slashes intact.
func escapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

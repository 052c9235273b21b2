package utils

import (
	"strings"
	"testing"
)

func TestNewReferenceCode(t *testing.T) {
	code := NewReferenceCode()

	if !strings.HasPrefix(code, referencePrefix) {
		t.Fatalf("expected prefix %q, got %q", referencePrefix, code)
	}

	suffix := strings.TrimPrefix(code, referencePrefix)
	if len(suffix) != referenceSuffixLength {
		t.Fatalf("expected suffix length %d, got %d", referenceSuffixLength, len(suffix))
	}
	for _, r := range suffix {
		if !strings.ContainsRune(letterBytes, r) {
			t.Fatalf("unexpected character %q in reference %q", r, code)
		}
	}
}

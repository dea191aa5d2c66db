package http_test

import (
	"testing"

	transport "github.com/fcbt5uhrtd65/ProjectStore/internal/transport/http"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"plain", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"double quoted", `Bearer "abc"`, "abc", true},
		{"single quoted", "Bearer 'abc'", "abc", true},
		{"trailing comma junk", "Bearer abc, charset=utf-8", "abc", true},
		{"quoted with trailing comma", `Bearer "abc",`, "abc", true},
		{"trailing space junk", "Bearer abc extra", "abc", true},
		{"padded", "Bearer   abc  ", "abc", true},
		{"wrong scheme", "Token abc", "", false},
		{"scheme only", "Bearer", "", false},
		{"empty header", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := transport.ExtractBearerToken(tc.header)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("ExtractBearerToken(%q) = (%q, %v), want (%q, %v)",
					tc.header, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

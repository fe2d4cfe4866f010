package auth

import "testing"

func TestSafeRedirect(t *testing.T) {
	const host = "example.com"

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"empty falls back", "", "/"},
		{"relative path allowed", "/admin/post/", "/admin/post/"},
		{"same host http", "http://example.com/post/hi/", "http://example.com/post/hi/"},
		{"same host https", "https://example.com/post/hi/", "https://example.com/post/hi/"},
		{"same host case-insensitive", "https://EXAMPLE.com/x", "https://EXAMPLE.com/x"},
		{"foreign host rejected", "https://evil.example/x", "/"},
		{"foreign host same suffix rejected", "https://notexample.com/x", "/"},
		{"scheme-relative rejected", "//evil.example/x", "/"},
		{"javascript scheme rejected", "javascript:alert(1)", "/"},
		{"ftp scheme rejected", "ftp://example.com/x", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRedirect(tt.target, host); got != tt.want {
				t.Errorf("SafeRedirect(%q, %q) = %q, want %q", tt.target, host, got, tt.want)
			}
		})
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"SEO vs. Social Media: What Works?", "seo-vs-social-media-what-works"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-a-slug", "already-a-slug"},
		{"100% Guaranteed!!!", "100-guaranteed"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

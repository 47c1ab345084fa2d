package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkChange(t *testing.T) {
	const current = "https://panel.example/sub/abc"

	tests := []struct {
		name    string
		entered string
		want    string
		changed bool
	}{
		{"new link", "  https://panel.example/sub/xyz\n", "https://panel.example/sub/xyz", true},
		{"unchanged", current + " ", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := linkChange(current, tt.entered)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}

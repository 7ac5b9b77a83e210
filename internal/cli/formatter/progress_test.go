package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		width       int
		want        string
	}{
		{"empty", 0, 2, 4, "[░░░░] 0/2"},
		{"half", 1, 2, 4, "[██░░] 1/2"},
		{"full", 2, 2, 4, "[████] 2/2"},
		{"over is clamped", 5, 2, 4, "[████] 2/2"},
		{"negative is clamped", -1, 3, 3, "[░░░] 0/3"},
		{"zero total", 0, 0, 2, "[░░] 0/1"},
		{"minimum width", 1, 1, 0, "[██] 1/1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.done, tt.total, tt.width)))
		})
	}
}

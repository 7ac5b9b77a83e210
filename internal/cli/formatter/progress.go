package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a count bar like [████░░░░] 1/2.
// The bar turns green once done reaches total, yellow when partially filled.
func RenderProgress(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	done = min(max(done, 0), total)
	width = max(width, 2)

	filled := done * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleDim
	switch {
	case done == total:
		style = StyleGreen
	case done > 0:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}

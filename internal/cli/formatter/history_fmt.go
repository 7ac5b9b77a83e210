package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

var historyColumns = []Column{
	{Title: "WHEN"},
	{Title: "ACTIVITY"},
	{Title: "CONTEXT"},
	{Title: "ID"},
}

// FormatHistory renders completions newest first. now anchors the relative
// timestamps.
func FormatHistory(resp *contract.HistoryResponse, req contract.HistoryRequest, labels Labels, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("History"))
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		if req.Query != "" {
			b.WriteString(Dim(fmt.Sprintf("Nothing matches %q.", req.Query)))
		} else {
			b.WriteString(Dim("No practices yet. Try `microrest suggest`."))
		}
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		ctx := domain.CompletionContext{Emotion: item.Entry.Emotion, Location: item.Entry.Location}
		rows = append(rows, []string{
			HumanTimestamp(item.CompletedAt, now),
			ActivityTitle(item.Activity),
			ContextLabel(labels, ctx),
			Dim(TruncID(item.Entry.ID)),
		})
	}
	b.WriteString(RenderTable(historyColumns, rows))

	hidden := resp.Total - len(resp.Items)
	if hidden > 0 && req.Query == "" && req.Limit == 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%d entries refer to activities no longer in the catalog.", hidden)))
		b.WriteString("\n")
	}
	return b.String()
}

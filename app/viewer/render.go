package viewer

import (
	"fmt"
	"io"
	"strings"

	"taskmaster-go/app/models"
)

const barWidth = 20

// Render writes one card per task followed by the collection counters.
func Render(w io.Writer, result models.AggregateResult) error {
	var b strings.Builder
	for _, t := range result.Tasks {
		fmt.Fprintf(&b, "#%s %s\n", t.ID, t.Title)
		fmt.Fprintf(&b, "  status: %s", orDash(string(t.Status)))
		if t.Priority != "" {
			fmt.Fprintf(&b, "  priority: %s", t.Priority)
		}
		b.WriteString("\n")
		if t.Description != "" {
			fmt.Fprintf(&b, "  %s\n", t.Description)
		}
		fmt.Fprintf(&b, "  %s %3d%%\n", ProgressBar(t.Progress), t.Progress)
		for _, st := range t.Subtasks {
			mark := " "
			if st.Status.Done() {
				mark = "x"
			}
			fmt.Fprintf(&b, "    [%s] %s %s\n", mark, st.ID, st.Title)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d tasks, %d completed, %d subtasks\n",
		result.TotalTasks, result.CompletedTasks, result.TotalSubtasks)

	_, err := io.WriteString(w, b.String())
	return err
}

// ProgressBar draws percent as a fixed-width bar. Values outside [0,100]
// are clamped.
func ProgressBar(percent int) string {
	percent = max(0, min(100, percent))
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

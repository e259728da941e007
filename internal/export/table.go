package export

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/olekukonko/tablewriter"
)

// Table writes recs as a titled text table.
func Table(w io.Writer, title string, recs []*catalog.Record) {
	if title != "" {
		color.New(color.FgYellow).Fprintln(w, title)
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Number", "Name", "Prerequisite", "Semesters"})
	table.SetAutoWrapText(false)
	for _, r := range recs {
		table.Append(row(r))
	}
	table.Render()
}

func row(r *catalog.Record) []string {
	pre := "-"
	if r.Prerequisite != nil {
		pre = r.Prerequisite.String()
	}
	sems := "?"
	if r.Semesters != nil {
		parts := make([]string, 0, len(r.Semesters))
		for _, s := range r.Semesters {
			parts = append(parts, string(s))
		}
		sems = strings.Join(parts, ", ")
	}
	return []string{r.Number, r.Name, pre, sems}
}

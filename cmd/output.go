package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/search"
	"github.com/davidschrooten/open-academic-records/internal/validation"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("32"))
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

func checkOutput(format string) error {
	if format != outputJSON && format != outputTable {
		return fmt.Errorf("unknown output format %q (want json or table)", format)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderSearchResult(w io.Writer, result *search.Result[records.Record], fields []string) {
	fmt.Fprintln(w, titleStyle.Render(searchTitle(result.Query)))

	if len(result.Items) == 0 {
		fmt.Fprintln(w, metaStyle.Render("No matching records"))
	} else {
		t := newTable(fields...)
		for i, item := range result.Items {
			row := make([]string, len(fields))
			for j, f := range fields {
				if i < len(result.Highlights) {
					if h, ok := result.Highlights[i][f]; ok {
						row[j] = h
						continue
					}
				}
				row[j], _ = values.ToString(item.Field(f))
			}
			t.Row(row...)
		}
		fmt.Fprintln(w, t.String())
	}

	fmt.Fprintln(w, metaStyle.Render(fmt.Sprintf("Showing %d of %d (%.2fms)",
		len(result.Items), result.Total, result.ExecutionTimeMs)))
	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w, metaStyle.Render("Suggestions: "+strings.Join(result.Suggestions, ", ")))
	}
}

func searchTitle(query string) string {
	if query == "" {
		return "All records"
	}
	return fmt.Sprintf("Results for %q", query)
}

func renderHistory(w io.Writer, history []string) {
	fmt.Fprintln(w, titleStyle.Render("Search history"))
	if len(history) == 0 {
		fmt.Fprintln(w, metaStyle.Render("empty"))
		return
	}
	for i, q := range history {
		fmt.Fprintf(w, "%2d. %s\n", i+1, q)
	}
}

func renderValidation(w io.Writer, label string, result validation.ValidationResult) {
	status := okStyle.Render("valid")
	if !result.IsValid {
		status = errorStyle.Render("invalid")
	}
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(label), status)
	for _, e := range result.Errors {
		fmt.Fprintln(w, errorStyle.Render("  ✗ "+e))
	}
	for _, warn := range result.Warnings {
		fmt.Fprintln(w, warningStyle.Render("  ! "+warn))
	}
}

func renderGPA(w io.Writer, summaries []records.SemesterSummary, cumulative *float64) {
	fmt.Fprintln(w, titleStyle.Render("Semester GPA"))

	t := newTable("Semester", "Subjects", "Credits", "GPA")
	for _, s := range summaries {
		t.Row(s.Semester.Name, fmt.Sprint(s.Subjects), fmt.Sprintf("%g", s.CreditHours), formatGPA(s.GPA))
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, okStyle.Render("Cumulative GPA: "+formatGPA(cumulative)))
}

func formatGPA(gpa *float64) string {
	if gpa == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *gpa)
}

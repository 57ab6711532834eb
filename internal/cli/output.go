package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the workbook in the specified format
func WriteOutput(w io.Writer, wb *workbook.Workbook, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, wb)
	case FormatText:
		return writeText(w, wb, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, wb *workbook.Workbook) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(wb)
}

func writeText(w io.Writer, wb *workbook.Workbook, verbose bool) error {
	fmt.Fprintf(w, "Week %s\n", wb.WeekKey)

	total := 0
	for _, section := range wb.Sections {
		title := section.Title
		if title == "" {
			title = string(section.ID)
		}
		fmt.Fprintf(w, "\n%s (%d items):\n", title, len(section.Items))

		for _, item := range section.Items {
			fmt.Fprintf(w, "  %d. %s\n", item.Position, item.Text)
			if verbose {
				fmt.Fprintf(w, "     ID: %s\n", item.ID)
				if flags := itemFlags(item); flags != "" {
					fmt.Fprintf(w, "     Flags: %s\n", flags)
				}
			}
			total++
		}
	}

	fmt.Fprintf(w, "\nTotal: %d items across %d sections\n", total, len(wb.Sections))
	return nil
}

func itemFlags(item workbook.Item) string {
	var flags []string
	if item.IsAssignable {
		flags = append(flags, "assignable")
	}
	if item.ChairmanAssigned {
		flags = append(flags, "chairman")
	}
	if item.HasPair {
		flags = append(flags, "pair")
	}
	return strings.Join(flags, ", ")
}

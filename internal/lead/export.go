package lead

import (
	"fmt"
	"io"
	"strings"
	"time"

	"luxrealty_backend/internal/model"
)

// CSVHeader fixed export column order.
var CSVHeader = []string{"Name", "Email", "Phone", "Language", "Project", "Status", "Message", "Created"}

// ExportCSV writes the given clients as CSV, one header row plus one row per
// client. Every cell is wrapped in double quotes so embedded commas and
// newlines survive; embedded quotes are doubled. encoding/csv is not used
// because it quotes only when needed and the export format quotes every cell.
func ExportCSV(w io.Writer, clients []model.Client) error {
	if err := writeRow(w, CSVHeader); err != nil {
		return err
	}

	for _, c := range clients {
		row := []string{
			c.FullName,
			c.Email,
			c.Phone,
			c.Language,
			c.ProjectSelected,
			c.Status,
			c.Message,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportFilename download name for an export taken at the given time.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("clients_%s.csv", now.Format("2006-01-02"))
}

func writeRow(w io.Writer, cells []string) error {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}

// Package export renders a transaction list as delimited text for offline use.
package export

import (
	"strconv"
	"strings"
	"time"

	"fintrack/models"
)

// Header is the fixed first row of every export.
const Header = "Date,Description,Category,Type,Amount (INR)"

// CSV renders one row per transaction under the header row. The description
// is always quoted with internal quotes doubled; the date is rendered without
// commas so rows stay parseable by naive splitters.
func CSV(txs []models.Transaction) string {
	rows := make([]string, 0, len(txs)+1)
	rows = append(rows, Header)
	for _, tx := range txs {
		rows = append(rows, strings.Join([]string{
			formatDate(tx.Date),
			quote(tx.Description),
			tx.Category,
			tx.Type,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func formatDate(t time.Time) string {
	return strings.ReplaceAll(t.Format("Jan 02, 2006"), ",", "")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

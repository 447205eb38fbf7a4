package export

import (
	"strings"
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
)

func TestCSVEmptyList(t *testing.T) {
	out := CSV(nil)
	assert.Equal(t, Header, out)
}

func TestCSVTwoRows(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Description: "Coffee",
			Category:    "Food",
			Type:        models.TypeExpense,
			Amount:      4.5,
		},
		{
			Date:        time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			Description: "Salary",
			Category:    "Work",
			Type:        models.TypeIncome,
			Amount:      3000,
		},
	}
	out := CSV(txs)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, `Jan 01 2024,"Coffee",Food,expense,4.5`, lines[1])
	assert.Equal(t, `Feb 15 2024,"Salary",Work,income,3000`, lines[2])
}

func TestCSVQuotesDoubled(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:        time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			Description: `Lunch "special", downtown`,
			Category:    "Food",
			Type:        models.TypeExpense,
			Amount:      12.75,
		},
	}
	lines := strings.Split(CSV(txs), "\n")
	assert.Equal(t, `Mar 03 2024,"Lunch ""special"", downtown",Food,expense,12.75`, lines[1])
}

func TestCSVAmountUnmodified(t *testing.T) {
	txs := []models.Transaction{
		{Date: time.Now(), Description: "x", Category: "Other", Type: models.TypeIncome, Amount: 0.1},
	}
	assert.True(t, strings.HasSuffix(CSV(txs), ",0.1"))
}

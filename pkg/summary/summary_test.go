package summary

import (
	"math"
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
)

func tx(typ, category string, amount float64) models.Transaction {
	return models.Transaction{Type: typ, Category: category, Amount: amount, Date: time.Now()}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.Balance)
	assert.Empty(t, s.IncomeByCategory)
	assert.Empty(t, s.ExpenseByCategory)
}

func TestSummarizeTotalsAndBalance(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx(models.TypeIncome, "Salary", 3000),
		tx(models.TypeIncome, "Freelance", 500),
		tx(models.TypeExpense, "Food", 120.50),
		tx(models.TypeExpense, "Rent", 900),
	})
	assert.Equal(t, 3500.0, s.TotalIncome)
	assert.Equal(t, 1020.50, s.TotalExpenses)
	assert.Equal(t, s.TotalIncome-s.TotalExpenses, s.Balance)
}

func TestSummarizeCategorySumsMatchTotals(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx(models.TypeIncome, "Salary", 3000),
		tx(models.TypeIncome, "Salary", 200),
		tx(models.TypeIncome, "Gifts", 50),
		tx(models.TypeExpense, "Food", 10),
		tx(models.TypeExpense, "Food", 20),
		tx(models.TypeExpense, "Travel", 5),
	})
	var income, expenses float64
	for _, ct := range s.IncomeByCategory {
		income += ct.Value
	}
	for _, ct := range s.ExpenseByCategory {
		expenses += ct.Value
	}
	assert.Equal(t, s.TotalIncome, income)
	assert.Equal(t, s.TotalExpenses, expenses)
}

func TestSummarizeBreakdownSortedDescending(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx(models.TypeExpense, "Food", 10),
		tx(models.TypeExpense, "Rent", 900),
		tx(models.TypeExpense, "Travel", 45),
	})
	assert.Equal(t, []CategoryTotal{
		{Name: "Rent", Value: 900},
		{Name: "Travel", Value: 45},
		{Name: "Food", Value: 10},
	}, s.ExpenseByCategory)
}

func TestSummarizeStableTieOrder(t *testing.T) {
	// equal values keep first-encounter order
	s := Summarize([]models.Transaction{
		tx(models.TypeExpense, "B", 50),
		tx(models.TypeExpense, "A", 50),
		tx(models.TypeExpense, "C", 50),
	})
	assert.Equal(t, []CategoryTotal{
		{Name: "B", Value: 50},
		{Name: "A", Value: 50},
		{Name: "C", Value: 50},
	}, s.ExpenseByCategory)
}

func TestSummarizeSkipsNonFiniteAmounts(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx(models.TypeIncome, "Salary", 100),
		tx(models.TypeIncome, "Salary", math.NaN()),
		tx(models.TypeExpense, "Food", math.Inf(1)),
	})
	assert.Equal(t, 100.0, s.TotalIncome)
	assert.Zero(t, s.TotalExpenses)
	assert.Len(t, s.IncomeByCategory, 1)
	assert.Empty(t, s.ExpenseByCategory)
}

func TestSummarizeIgnoresUnknownType(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("transfer", "Misc", 10),
		tx(models.TypeIncome, "Salary", 100),
	})
	assert.Equal(t, 100.0, s.TotalIncome)
	assert.Zero(t, s.TotalExpenses)
}

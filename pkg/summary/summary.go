// Package summary derives display aggregates from a transaction list. It is a
// pure function of data already loaded: totals are recomputed from scratch on
// every call, which is cheap at personal-finance volumes and avoids keeping
// incremental state anywhere.
package summary

import (
	"math"
	"sort"

	"fintrack/models"
)

// CategoryTotal is one (name, value) pair of a category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Summary holds the derived totals and per-category breakdowns.
type Summary struct {
	TotalIncome       float64         `json:"totalIncome"`
	TotalExpenses     float64         `json:"totalExpenses"`
	Balance           float64         `json:"balance"`
	IncomeByCategory  []CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
}

// Summarize folds the list in a single pass. Non-finite amounts are skipped
// rather than erroring. Breakdowns are sorted descending by value; equal
// values keep their first-encounter order.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		IncomeByCategory:  []CategoryTotal{},
		ExpenseByCategory: []CategoryTotal{},
	}
	incomeIdx := map[string]int{}
	expenseIdx := map[string]int{}

	for _, tx := range txs {
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			continue
		}
		switch tx.Type {
		case models.TypeIncome:
			s.TotalIncome += tx.Amount
			accumulate(&s.IncomeByCategory, incomeIdx, tx.Category, tx.Amount)
		case models.TypeExpense:
			s.TotalExpenses += tx.Amount
			accumulate(&s.ExpenseByCategory, expenseIdx, tx.Category, tx.Amount)
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses

	sortByValue(s.IncomeByCategory)
	sortByValue(s.ExpenseByCategory)
	return s
}

func accumulate(totals *[]CategoryTotal, idx map[string]int, category string, amount float64) {
	if i, ok := idx[category]; ok {
		(*totals)[i].Value += amount
		return
	}
	idx[category] = len(*totals)
	*totals = append(*totals, CategoryTotal{Name: category, Value: amount})
}

func sortByValue(totals []CategoryTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Value > totals[j].Value
	})
}

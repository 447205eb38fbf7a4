// Command report prints an offline summary for one user's transactions and
// can write the CSV export to a file, straight from the database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fintrack/models"
	"fintrack/pkg/export"
	"fintrack/pkg/summary"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "email of the user to report for")
	month := flag.String("month", "", "optional month filter (YYYY-MM)")
	csvPath := flag.String("csv", "", "optional path to write the CSV export")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: report -email user@example.com [-month YYYY-MM] [-csv out.csv]")
		os.Exit(2)
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN not set; export DB_DSN and retry")
		os.Exit(2)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}

	q := db.Where("user_id = ?", user.ID)
	if *month != "" {
		t, err := time.Parse("2006-01", *month)
		if err != nil {
			log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
		}
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}
	var txs []models.Transaction
	if err := q.Order("date DESC").Find(&txs).Error; err != nil {
		log.Fatalf("fetch transactions failed: %v", err)
	}

	s := summary.Summarize(txs)
	fmt.Printf("Report for %s (%d transactions):\n", user.Email, len(txs))
	fmt.Printf("  Total Income:   %.2f\n", s.TotalIncome)
	fmt.Printf("  Total Expenses: %.2f\n", s.TotalExpenses)
	fmt.Printf("  Net Balance:    %.2f\n", s.Balance)
	if len(s.ExpenseByCategory) > 0 {
		fmt.Println("  Expenses by category:")
		for _, ct := range s.ExpenseByCategory {
			fmt.Printf("    %-20s %.2f\n", ct.Name, ct.Value)
		}
	}
	if len(s.IncomeByCategory) > 0 {
		fmt.Println("  Income by category:")
		for _, ct := range s.IncomeByCategory {
			fmt.Printf("    %-20s %.2f\n", ct.Name, ct.Value)
		}
	}

	if *csvPath != "" {
		if err := os.WriteFile(*csvPath, []byte(export.CSV(txs)), 0644); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("wrote %s\n", *csvPath)
	}
}

package main

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/models"
	"fintrack/pkg/export"
	"fintrack/pkg/summary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Finance Tracker API Running")
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", registerHandler)
	auth.POST("/login", loginHandler)
	auth.GET("/me", jwtAuthMiddleware(), meHandler)

	tx := r.Group("/api/transactions")
	tx.Use(jwtAuthMiddleware())
	tx.GET("", listTransactionsHandler)
	tx.POST("", addTransactionHandler)
	tx.GET("/summary", transactionSummaryHandler)
	tx.GET("/export", exportTransactionsHandler)
	tx.DELETE("/:id", deleteTransactionHandler)
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email and password"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
		return
	}
	user, err := RegisterUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		slog.Error("register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error during registration"})
		return
	}
	token, err := GenerateToken(user.ID)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error during registration"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "_id": user.ID, "email": user.Email, "token": token})
}

func loginHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email and password"})
		return
	}
	user, err := AuthenticateUser(req.Email, req.Password)
	if err != nil {
		// generic on purpose: never reveal whether the email exists
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	token, err := GenerateToken(user.ID)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error during login"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "_id": user.ID, "email": user.Email, "token": token})
}

func meHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		// should be unreachable behind jwtAuthMiddleware
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"_id":       user.ID,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
	}})
}

// userTransactions loads the caller's transactions ordered most recent first.
func userTransactions(userID uint) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := db.Where("user_id = ?", userID).Order("date DESC").Find(&txs).Error
	return txs, err
}

func listTransactionsHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}
	txs, err := userTransactions(user.ID)
	if err != nil {
		slog.Error("list transactions failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(txs), "data": txs})
}

type addTransactionRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
}

func addTransactionHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}
	var req addTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" || req.Amount == nil || req.Type == "" || strings.TrimSpace(req.Category) == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide all required fields: description, amount, type, category, date"})
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": `Type must be either "income" or "expense"`})
		return
	}
	amount := *req.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Amount must be a positive number"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Date must be a valid date"})
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		Description: req.Description,
		Amount:      amount,
		Type:        req.Type,
		Category:    strings.TrimSpace(req.Category),
		Date:        date,
	}
	if err := db.Create(&tx).Error; err != nil {
		if isSchemaValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		slog.Error("create transaction failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": tx})
}

func deleteTransactionHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No transaction found"})
		return
	}
	// lookup is by id alone, then checked: "not found" and "not yours" stay
	// distinguishable outcomes
	var tx models.Transaction
	if err := db.First(&tx, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No transaction found"})
			return
		}
		slog.Error("load transaction failed", "error", err, "transaction_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		return
	}
	if tx.UserID != user.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authorized to delete this transaction"})
		return
	}
	if err := db.Delete(&tx).Error; err != nil {
		slog.Error("delete transaction failed", "error", err, "transaction_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func transactionSummaryHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}
	txs, err := userTransactions(user.ID)
	if err != nil {
		slog.Error("summary query failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary.Summarize(txs)})
}

func exportTransactionsHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}
	txs, err := userTransactions(user.ID)
	if err != nil {
		slog.Error("export query failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		return
	}
	filename := "transactions-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(txs)))
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// isSchemaValidationError detects constraint violations raised by the
// persistence layer (e.g. the transaction type check) so they surface as 400s
// instead of generic server errors.
func isSchemaValidationError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "check constraint") || strings.Contains(s, "constraint failed") || strings.Contains(s, "violates")
}

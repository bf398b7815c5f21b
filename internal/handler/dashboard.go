package handler

import (
	"net/http"
	"strconv"
	"time"

	"financy/internal/models"
	"financy/internal/summary"
	"financy/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler serves the aggregated totals view.
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// GetDashboard recomputes summary and per-category rollups over the
// current user's transactions, optionally narrowed to a month/year.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	query := h.DB.Where("user_id = ?", user.ID)

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	if month < 1 || month > 12 {
		month = 0
	}
	if month != 0 || year != 0 {
		start, end := monthYearRange(month, year, time.Now())
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var transactions []models.Transaction
	if err := query.Preload("Category").
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list transactions")
		return
	}

	totals := summary.Summarize(transactions)

	type categoryTotalResp struct {
		CategoryID  uint    `json:"category_id"`
		Name        string  `json:"name"`
		IncomeCent  int64   `json:"income_cent"`
		Income      float64 `json:"income"`
		ExpenseCent int64   `json:"expense_cent"`
		Expense     float64 `json:"expense"`
	}

	categoryTotals := summary.CategoryTotals(transactions)
	byCategory := make([]categoryTotalResp, 0, len(categoryTotals))
	for _, ct := range categoryTotals {
		byCategory = append(byCategory, categoryTotalResp{
			CategoryID:  ct.CategoryID,
			Name:        ct.Name,
			IncomeCent:  ct.IncomeCent,
			Income:      centToAmount(ct.IncomeCent),
			ExpenseCent: ct.ExpenseCent,
			Expense:     centToAmount(ct.ExpenseCent),
		})
	}

	util.Success(c, util.Response{
		"summary": gin.H{
			"income_cent":  totals.IncomeCent,
			"income":       centToAmount(totals.IncomeCent),
			"expense_cent": totals.ExpenseCent,
			"expense":      centToAmount(totals.ExpenseCent),
			"balance_cent": totals.BalanceCent,
			"balance":      centToAmount(totals.BalanceCent),
		},
		"by_category": byCategory,
	})
}

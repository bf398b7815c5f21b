package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"financy/internal/models"
	"financy/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the per-user transaction CRUD with
// compound list filtering.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

type transactionResp struct {
	ID         uint          `json:"id"`
	Title      string        `json:"title"`
	Type       string        `json:"type"`
	AmountCent int64         `json:"amount_cent"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	CategoryID uint          `json:"category_id"`
	Category   *categoryResp `json:"category"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	resp := transactionResp{
		ID:         t.ID,
		Title:      t.Title,
		Type:       t.Type,
		AmountCent: t.AmountCent,
		Amount:     centToAmount(t.AmountCent),
		Date:       t.Date,
		CategoryID: t.CategoryID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.Category.ID != 0 {
		cat := toCategoryResp(&t.Category)
		resp.Category = &cat
	}
	return resp
}

// ownedCategory checks that the category belongs to the given user.
func (h *TransactionHandler) ownedCategory(userID, categoryID uint) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	return count > 0, err
}

// monthYearRange derives the half-open [start, end) date range from the
// month/year filters. Zero year means the current year; zero month
// means the whole year. Month is 1-indexed and December rolls over into
// the next year.
func monthYearRange(month, year int, now time.Time) (time.Time, time.Time) {
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ListTransactions returns the current user's transactions, all
// supplied filters ANDed, date descending, category included,
// no pagination.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	query := h.DB.Where("user_id = ?", user.ID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	if month < 1 || month > 12 {
		month = 0
	}
	if month != 0 || year != 0 {
		start, end := monthYearRange(month, year, time.Now())
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	if txType := c.Query("type"); txType == "income" || txType == "expense" {
		query = query.Where("type = ?", txType)
	}

	if categoryID, err := strconv.Atoi(c.Query("category_id")); err == nil && categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var transactions []models.Transaction
	if err := query.Preload("Category").
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list transactions")
		return
	}

	items := make([]transactionResp, 0, len(transactions))
	for i := range transactions {
		items = append(items, toTransactionResp(&transactions[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

type createTransactionReq struct {
	Title      string  `json:"title" binding:"required,max=128"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Type       string  `json:"type" binding:"required,oneof=income expense"`
	Date       string  `json:"date" binding:"required"`
	CategoryID uint    `json:"category_id" binding:"required"`
}

// CreateTransaction inserts a transaction under the current user. The
// referenced category must be owned by the same user.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date")
		return
	}

	owned, err := h.ownedCategory(user.ID, req.CategoryID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check category")
		return
	}
	if !owned {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidCategory, "invalid category")
		return
	}

	transaction := models.Transaction{
		UserID:     user.ID,
		CategoryID: req.CategoryID,
		Title:      strings.TrimSpace(req.Title),
		Type:       req.Type,
		AmountCent: amountToCent(req.Amount),
		Date:       date,
	}
	if err := h.DB.Create(&transaction).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create transaction")
		return
	}

	if err := h.DB.Preload("Category").First(&transaction, transaction.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transaction")
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(&transaction),
	})
}

// updateTransactionReq distinguishes "absent" from "set": only fields
// present in the body are applied.
type updateTransactionReq struct {
	Title      *string  `json:"title" binding:"omitempty,max=128"`
	Amount     *float64 `json:"amount" binding:"omitempty,gt=0"`
	Type       *string  `json:"type" binding:"omitempty,oneof=income expense"`
	Date       *string  `json:"date"`
	CategoryID *uint    `json:"category_id"`
}

// UpdateTransaction applies a partial update to an owned transaction.
// A supplied category id is re-validated against the caller's
// categories; absent fields are left unchanged.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req updateTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	var transaction models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&transaction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transaction")
		}
		return
	}

	if req.CategoryID != nil {
		owned, err := h.ownedCategory(user.ID, *req.CategoryID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check category")
			return
		}
		if !owned {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidCategory, "invalid category")
			return
		}
		transaction.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "title is required")
			return
		}
		transaction.Title = title
	}
	if req.Amount != nil {
		transaction.AmountCent = amountToCent(*req.Amount)
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date")
			return
		}
		transaction.Date = date
	}

	if err := h.DB.Save(&transaction).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update transaction")
		return
	}

	if err := h.DB.Preload("Category").First(&transaction, transaction.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transaction")
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(&transaction),
	})
}

// DeleteTransaction removes an owned transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var transaction models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&transaction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load transaction")
		}
		return
	}

	if err := h.DB.Delete(&transaction).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete transaction")
		return
	}

	util.Success(c, util.Response{
		"deleted": true,
	})
}

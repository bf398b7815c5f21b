package summary

import (
	"testing"

	"financy/internal/models"
)

func TestSummarize_MixedTypes(t *testing.T) {
	transactions := []models.Transaction{
		{Type: "income", AmountCent: 10000},
		{Type: "expense", AmountCent: 4000},
		{Type: "expense", AmountCent: 1000},
	}

	s := Summarize(transactions)

	if s.IncomeCent != 10000 {
		t.Errorf("IncomeCent = %d, want 10000", s.IncomeCent)
	}
	if s.ExpenseCent != 5000 {
		t.Errorf("ExpenseCent = %d, want 5000", s.ExpenseCent)
	}
	if s.BalanceCent != 5000 {
		t.Errorf("BalanceCent = %d, want 5000", s.BalanceCent)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.IncomeCent != 0 || s.ExpenseCent != 0 || s.BalanceCent != 0 {
		t.Errorf("Summarize(nil) = %+v, want all zero", s)
	}
}

func TestCategoryTotals_GroupsAndSorts(t *testing.T) {
	transactions := []models.Transaction{
		{Type: "income", AmountCent: 500, CategoryID: 1, Category: models.Category{ID: 1, Name: "Salary"}},
		{Type: "expense", AmountCent: 3000, CategoryID: 2, Category: models.Category{ID: 2, Name: "Food"}},
		{Type: "expense", AmountCent: 2000, CategoryID: 2, Category: models.Category{ID: 2, Name: "Food"}},
		{Type: "income", AmountCent: 100, CategoryID: 1, Category: models.Category{ID: 1, Name: "Salary"}},
	}

	totals := CategoryTotals(transactions)

	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2", len(totals))
	}

	// Food has the bigger combined volume (5000 > 600) and must come first
	if totals[0].Name != "Food" {
		t.Errorf("totals[0].Name = %q, want Food", totals[0].Name)
	}
	if totals[0].ExpenseCent != 5000 || totals[0].IncomeCent != 0 {
		t.Errorf("Food totals = income %d / expense %d, want 0 / 5000",
			totals[0].IncomeCent, totals[0].ExpenseCent)
	}
	if totals[1].Name != "Salary" {
		t.Errorf("totals[1].Name = %q, want Salary", totals[1].Name)
	}
	if totals[1].IncomeCent != 600 || totals[1].ExpenseCent != 0 {
		t.Errorf("Salary totals = income %d / expense %d, want 600 / 0",
			totals[1].IncomeCent, totals[1].ExpenseCent)
	}
}

func TestCategoryTotals_UncategorizedBucket(t *testing.T) {
	// a deleted category leaves the transaction behind with no category row
	transactions := []models.Transaction{
		{Type: "expense", AmountCent: 700, CategoryID: 0},
	}

	totals := CategoryTotals(transactions)

	if len(totals) != 1 {
		t.Fatalf("len(totals) = %d, want 1", len(totals))
	}
	if totals[0].Name != "Uncategorized" {
		t.Errorf("totals[0].Name = %q, want Uncategorized", totals[0].Name)
	}
	if totals[0].ExpenseCent != 700 {
		t.Errorf("totals[0].ExpenseCent = %d, want 700", totals[0].ExpenseCent)
	}
}

func TestCategoryTotals_Empty(t *testing.T) {
	totals := CategoryTotals(nil)

	if len(totals) != 0 {
		t.Errorf("len(totals) = %d, want 0", len(totals))
	}
}

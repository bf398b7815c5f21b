// Package summary derives dashboard totals from an already-fetched
// transaction set. It is a pure reduction: no persisted state, no I/O,
// empty input produces zero totals.
package summary

import (
	"sort"

	"financy/internal/models"
)

// Summary holds the overall income/expense totals in cents.
type Summary struct {
	IncomeCent  int64
	ExpenseCent int64
	BalanceCent int64
}

// CategoryTotal is the per-category rollup, income and expense summed
// separately. Name falls back to "Uncategorized" when the category row
// is gone (deleting a category leaves its transactions in place).
type CategoryTotal struct {
	CategoryID  uint
	Name        string
	IncomeCent  int64
	ExpenseCent int64
}

// Summarize computes income, expense and balance over the given set.
func Summarize(transactions []models.Transaction) Summary {
	var s Summary
	for i := range transactions {
		t := &transactions[i]
		if t.Type == "income" {
			s.IncomeCent += t.AmountCent
		} else {
			s.ExpenseCent += t.AmountCent
		}
	}
	s.BalanceCent = s.IncomeCent - s.ExpenseCent
	return s
}

// CategoryTotals groups the set by category id and sorts the groups
// descending by combined volume (income + expense).
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	byCategory := make(map[uint]*CategoryTotal)
	for i := range transactions {
		t := &transactions[i]

		ct, ok := byCategory[t.CategoryID]
		if !ok {
			name := t.Category.Name
			if name == "" {
				name = "Uncategorized"
			}
			ct = &CategoryTotal{CategoryID: t.CategoryID, Name: name}
			byCategory[t.CategoryID] = ct
		}
		if t.Type == "income" {
			ct.IncomeCent += t.AmountCent
		} else {
			ct.ExpenseCent += t.AmountCent
		}
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		vi := totals[i].IncomeCent + totals[i].ExpenseCent
		vj := totals[j].IncomeCent + totals[j].ExpenseCent
		if vi != vj {
			return vi > vj
		}
		return totals[i].CategoryID < totals[j].CategoryID
	})
	return totals
}

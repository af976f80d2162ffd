// Package calculator derives read-only aggregates from fund records.
// Every function here is pure: the same input snapshot yields the same output.
package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/azizulsheikh/studio/internal/models"
)

// IntegrityWarning reports a payment that references a member not present in
// the member list. Such payments are skipped, never fatal.
type IntegrityWarning struct {
	PaymentID string
	MemberID  string
}

// memberActivity accumulates one member's payments during aggregation.
type memberActivity struct {
	total  decimal.Decimal
	count  int
	latest *models.Payment
}

// SummarizeMembers computes one summary row per member.
//
// Algorithm:
//   - Group payments by member ID
//   - Total = sum of amounts with status Completed (0 for none)
//   - Latest = payment with the greatest timestamp; ties keep the earliest in input order
//   - Members without payments still get a row with zero values and a nil latest payment
//   - Rows are ordered by latest timestamp descending, rows without payments last;
//     ties keep member input order
//
// Payments whose member is unknown are skipped and reported as warnings.
func SummarizeMembers(members []models.Member, payments []models.Payment) ([]models.MemberPaymentSummary, []IntegrityWarning) {
	activity := make(map[string]*memberActivity, len(members))
	for _, m := range members {
		activity[m.ID] = &memberActivity{total: decimal.Zero}
	}

	var warnings []IntegrityWarning
	for i := range payments {
		p := &payments[i]
		a, ok := activity[p.MemberID]
		if !ok {
			warnings = append(warnings, IntegrityWarning{PaymentID: p.ID, MemberID: p.MemberID})
			continue
		}

		a.count++
		if p.Status == models.StatusCompleted {
			a.total = a.total.Add(p.Amount)
		}
		if a.latest == nil || p.Timestamp.After(a.latest.Timestamp) {
			a.latest = p
		}
	}

	summaries := make([]models.MemberPaymentSummary, 0, len(members))
	for _, m := range members {
		a := activity[m.ID]
		row := models.MemberPaymentSummary{
			MemberID:             m.ID,
			MemberName:           m.Name,
			TotalCompletedAmount: a.total,
			PaymentCount:         a.count,
		}
		if a.latest != nil {
			latest := *a.latest
			row.LatestPayment = &latest
			row.LastMethod = latest.PaymentMethod
			row.LastStatus = latest.Status
			row.LastPaymentDate = latest.Timestamp
		}
		summaries = append(summaries, row)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LatestPayment, summaries[j].LatestPayment
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Timestamp.After(b.Timestamp)
		}
	})

	return summaries, warnings
}

// MemberTotal returns the completed total for a single member's payments.
func MemberTotal(memberID string, payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.MemberID == memberID && p.Status == models.StatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

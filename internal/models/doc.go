// Package models defines the core domain models for the beef fund.
//
// # Persisted Models
//
// The following models are stored as flat JSON arrays, one file per collection:
//   - Member: A participant in the fund (admin or ordinary member)
//   - Payment: One recorded contribution attributed to a member
//   - Expense: One recorded outgoing cost, unrelated to members
//
// # Derived Models
//
// The following models are computed on every read and never stored:
//   - MemberPaymentSummary: One member's payment activity for list views
//   - Dashboard: Fund-wide totals for the admin overview
//   - PrioritizedPayment: A payment with its rank-derived fraud risk tier
//
// # Conventions
//
// 1. **IDs are UUIDs**: Generated by the fund service, never by callers
// 2. **Relationships by ID**: Payments reference members through MemberID, not pointers
// 3. **Exact money**: Amounts use decimal.Decimal and are exchanged as JSON numbers
// 4. **Field names match the data files**: JSON tags follow the existing camelCase files
package models

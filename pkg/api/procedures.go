package api

// Fully-qualified service names.
const (
	MemberServiceName  = "beeffund.v1.MemberService"
	PaymentServiceName = "beeffund.v1.PaymentService"
	ExpenseServiceName = "beeffund.v1.ExpenseService"
	ReportServiceName  = "beeffund.v1.ReportService"
	AuthServiceName    = "beeffund.v1.AuthService"
	AuditServiceName   = "beeffund.v1.AuditService"
)

// Procedure paths, as sent on the wire.
const (
	MemberServiceListMembersProcedure  = "/" + MemberServiceName + "/ListMembers"
	MemberServiceGetMemberProcedure    = "/" + MemberServiceName + "/GetMember"
	MemberServiceCreateMemberProcedure = "/" + MemberServiceName + "/CreateMember"
	MemberServiceUpdateMemberProcedure = "/" + MemberServiceName + "/UpdateMember"
	MemberServiceDeleteMemberProcedure = "/" + MemberServiceName + "/DeleteMember"

	PaymentServiceListPaymentsProcedure         = "/" + PaymentServiceName + "/ListPayments"
	PaymentServiceGetPaymentProcedure           = "/" + PaymentServiceName + "/GetPayment"
	PaymentServiceListPaymentsByMemberProcedure = "/" + PaymentServiceName + "/ListPaymentsByMember"
	PaymentServiceCreatePaymentProcedure        = "/" + PaymentServiceName + "/CreatePayment"
	PaymentServiceUpdatePaymentProcedure        = "/" + PaymentServiceName + "/UpdatePayment"
	PaymentServiceDeletePaymentProcedure        = "/" + PaymentServiceName + "/DeletePayment"

	ExpenseServiceListExpensesProcedure  = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceGetExpenseProcedure    = "/" + ExpenseServiceName + "/GetExpense"
	ExpenseServiceCreateExpenseProcedure = "/" + ExpenseServiceName + "/CreateExpense"
	ExpenseServiceUpdateExpenseProcedure = "/" + ExpenseServiceName + "/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure = "/" + ExpenseServiceName + "/DeleteExpense"

	ReportServiceListMemberSummariesProcedure = "/" + ReportServiceName + "/ListMemberSummaries"
	ReportServiceGetDashboardProcedure        = "/" + ReportServiceName + "/GetDashboard"
	ReportServicePrioritizePaymentsProcedure  = "/" + ReportServiceName + "/PrioritizePayments"

	AuthServiceLoginProcedure      = "/" + AuthServiceName + "/Login"
	AuthServiceGetSessionProcedure = "/" + AuthServiceName + "/GetSession"

	AuditServiceListEventsProcedure = "/" + AuditServiceName + "/ListEvents"
)

// PublicProcedures can be called without a session token: the login call and
// every read-only view of members, payments, expenses and reports.
var PublicProcedures = []string{
	AuthServiceLoginProcedure,
	MemberServiceListMembersProcedure,
	MemberServiceGetMemberProcedure,
	PaymentServiceListPaymentsProcedure,
	PaymentServiceGetPaymentProcedure,
	PaymentServiceListPaymentsByMemberProcedure,
	ExpenseServiceListExpensesProcedure,
	ExpenseServiceGetExpenseProcedure,
	ReportServiceListMemberSummariesProcedure,
	ReportServiceGetDashboardProcedure,
}

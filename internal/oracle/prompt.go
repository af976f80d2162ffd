package oracle

import (
	"strings"
	"text/template"
)

const prioritizePrompt = `You are an expert in fraud detection for payment processing systems.

Analyze the following payment records and prioritize them based on the likelihood of fraud.
Return the payment records sorted from highest to lowest risk of fraud.
Respond with a JSON array only. Each element must be an object with the keys
"id", "memberId", "amount", "timestamp" and "paymentMethod", copied unchanged
from the input. Include every record exactly once.

Payment Records:
{{range .}}- ID: {{.ID}}, Member ID: {{.MemberID}}, Amount: {{.Amount}}, Timestamp: {{.Timestamp}}, Payment Method: {{.PaymentMethod}}
{{end}}`

var promptTemplate = template.Must(template.New("prioritize").Parse(prioritizePrompt))

// renderPrompt fills the prioritization prompt with the given records.
func renderPrompt(records []PaymentRecord) (string, error) {
	var b strings.Builder
	if err := promptTemplate.Execute(&b, records); err != nil {
		return "", err
	}
	return b.String(), nil
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"fundtrack/internal/domain"
	"fundtrack/internal/logger"
	"fundtrack/internal/repository"
)

// Notifier tells a fund's operators about lifecycle events. Delivery is fire
// and forget: failures are logged and never fail the operation that
// triggered them.
type Notifier interface {
	NotifyCallDue(ctx context.Context, fund domain.Fund, a domain.Allocation, call domain.CapitalCall)
	NotifyDistributionReceived(ctx context.Context, fund domain.Fund, a domain.Allocation, d domain.Distribution)
}

// EmailService renders and sends notification emails. The Generate methods
// are exposed so templates can be previewed without sending.
type EmailService interface {
	Notifier
	GenerateCallDueEmail(fund domain.Fund, a domain.Allocation, call domain.CapitalCall) (string, string, error)
	GenerateDistributionEmail(fund domain.Fund, a domain.Allocation, d domain.Distribution) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
}

func NewEmailService(
	emailRepository repository.EmailRepository,
) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
	}
}

var callDueTemplate = template.Must(template.New("callDue").Parse(`<html><body>
<p>A capital call for <b>{{.FundName}}</b> is now due.</p>
<table>
<tr><td>Allocation</td><td>{{.AllocationID}}</td></tr>
<tr><td>Call</td><td>#{{.Sequence}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Call date</td><td>{{.CallDate}}</td></tr>
<tr><td>Due date</td><td>{{.DueDate}}</td></tr>
<tr><td>Outstanding on allocation</td><td>{{.Outstanding}}</td></tr>
</table>
</body></html>`))

var distributionTemplate = template.Must(template.New("distribution").Parse(`<html><body>
<p><b>{{.FundName}}</b> received a distribution.</p>
<table>
<tr><td>Allocation</td><td>{{.AllocationID}}</td></tr>
<tr><td>Type</td><td>{{.Type}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Date</td><td>{{.Date}}</td></tr>
{{if .Description}}<tr><td>Note</td><td>{{.Description}}</td></tr>{{end}}
</table>
</body></html>`))

func currencyOf(fund domain.Fund, a domain.Allocation) string {
	if a.Currency != "" {
		return a.Currency
	}
	return fund.Currency
}

func (h *emailServiceHandler) GenerateCallDueEmail(fund domain.Fund, a domain.Allocation, call domain.CapitalCall) (string, string, error) {
	currency := currencyOf(fund, a)
	amount := call.Remaining().Format(currency)
	subject := fmt.Sprintf("%s: capital call of %s due %s", fund.Name, amount, call.DueDate)

	var body bytes.Buffer
	err := callDueTemplate.Execute(&body, map[string]any{
		"FundName":     fund.Name,
		"AllocationID": a.AllocationID.String(),
		"Sequence":     call.Sequence,
		"Amount":       amount,
		"CallDate":     call.CallDate.String(),
		"DueDate":      call.DueDate.String(),
		"Outstanding":  a.OutstandingAmount.Format(currency),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render call due email: %w", err)
	}
	return subject, body.String(), nil
}

func (h *emailServiceHandler) GenerateDistributionEmail(fund domain.Fund, a domain.Allocation, d domain.Distribution) (string, string, error) {
	amount := d.Amount.Format(currencyOf(fund, a))
	subject := fmt.Sprintf("%s: %s distribution of %s", fund.Name, d.Type, amount)

	var body bytes.Buffer
	err := distributionTemplate.Execute(&body, map[string]any{
		"FundName":     fund.Name,
		"AllocationID": a.AllocationID.String(),
		"Type":         d.Type.String(),
		"Amount":       amount,
		"Date":         d.DistributionDate.String(),
		"Description":  d.Description,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render distribution email: %w", err)
	}
	return subject, body.String(), nil
}

func (h *emailServiceHandler) NotifyCallDue(ctx context.Context, fund domain.Fund, a domain.Allocation, call domain.CapitalCall) {
	subject, body, err := h.GenerateCallDueEmail(fund, a, call)
	h.send(ctx, fund, subject, body, err, "capitalCallID", call.CapitalCallID)
}

func (h *emailServiceHandler) NotifyDistributionReceived(ctx context.Context, fund domain.Fund, a domain.Allocation, d domain.Distribution) {
	subject, body, err := h.GenerateDistributionEmail(fund, a, d)
	h.send(ctx, fund, subject, body, err, "distributionID", d.DistributionID)
}

func (h *emailServiceHandler) send(ctx context.Context, fund domain.Fund, subject, body string, renderErr error, keysAndValues ...any) {
	log := logger.FromContext(ctx).With(keysAndValues...).With("fundID", fund.FundID)
	if renderErr != nil {
		log.Errorw("failed to build notification", "error", renderErr)
		return
	}
	if fund.NotificationEmail == nil || *fund.NotificationEmail == "" {
		log.Debugw("fund has no notification email, skipping")
		return
	}
	messageID, err := h.EmailRepository.SendEmail(ctx, *fund.NotificationEmail, subject, body)
	if err != nil {
		log.Warnw("failed to send notification", "error", err)
		return
	}
	log.Infow("sent notification", "messageID", messageID)
}

type noopNotifier struct{}

func (noopNotifier) NotifyCallDue(context.Context, domain.Fund, domain.Allocation, domain.CapitalCall) {
}

func (noopNotifier) NotifyDistributionReceived(context.Context, domain.Fund, domain.Allocation, domain.Distribution) {
}

// NoopNotifier is used when no email transport is configured.
var NoopNotifier Notifier = noopNotifier{}

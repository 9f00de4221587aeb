package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wavecrest/lead-intake/internal/leads"
	"github.com/wavecrest/lead-intake/internal/observability/metrics"
	"github.com/wavecrest/lead-intake/pkg/logging"
)

// sendTimeout bounds each alert delivery attempt.
const sendTimeout = 10 * time.Second

// timestampLayout renders the submission time for the sales inbox.
const timestampLayout = "Mon, 02 Jan 2006 15:04:05 MST"

// LeadAlerter emails the sales inbox about each new lead. Delivery is
// fire-and-forget: failures are logged and counted, never returned to the
// submission path.
type LeadAlerter struct {
	sender  EmailSender
	to      string
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger
}

// NewLeadAlerter wires the alerter, returning nil when the sender or
// destination address is not configured so callers can skip notification
// entirely.
func NewLeadAlerter(sender EmailSender, to string, m *metrics.IntakeMetrics, logger *logging.Logger) *LeadAlerter {
	if sender == nil || strings.TrimSpace(to) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadAlerter{
		sender:  sender,
		to:      to,
		metrics: m,
		logger:  logger,
	}
}

// LeadCreated dispatches the alert in the background.
func (a *LeadAlerter) LeadCreated(lead *leads.Lead) {
	if a == nil || lead == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := a.Deliver(ctx, lead); err != nil {
			a.logger.Error("lead alert failed", "error", err, "lead_id", lead.ID)
			a.metrics.ObserveNotification("failed")
			return
		}
		a.metrics.ObserveNotification("sent")
	}()
}

// Deliver sends the alert synchronously. Exposed for tests and for callers
// that want to wait on the send.
func (a *LeadAlerter) Deliver(ctx context.Context, lead *leads.Lead) error {
	return a.sender.Send(ctx, ComposeLeadAlert(a.to, lead))
}

// ComposeLeadAlert builds the notification message, including every lead
// field and a human-readable submission timestamp.
func ComposeLeadAlert(to string, lead *leads.Lead) EmailMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "New lead submitted via the website.\n\n")
	fmt.Fprintf(&b, "Name: %s %s\n", lead.FirstName, lead.LastName)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	fmt.Fprintf(&b, "Message: %s\n", lead.Message)
	if lead.DemoInterest != "" {
		fmt.Fprintf(&b, "Demo interest: %s\n", lead.DemoInterest)
	}
	fmt.Fprintf(&b, "Submitted: %s\n", lead.CreatedAt.Format(timestampLayout))

	return EmailMessage{
		To:      to,
		ToName:  "Sales",
		Subject: fmt.Sprintf("New lead: %s %s", lead.FirstName, lead.LastName),
		Body:    b.String(),
	}
}

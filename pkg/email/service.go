package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendPurchaseReceipt confirms a token pack purchase
func (s *Service) SendPurchaseReceipt(toEmail, packName string, tokens int64, amountUSD float64) error {
	billingURL := fmt.Sprintf("%s/billing", s.baseURL)

	subject := "Your Nexa token purchase"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thanks for your purchase!</h2>
			<p>Your <strong>%s</strong> pack is ready: <strong>%s tokens</strong> have been added to your balance.</p>
			<p>Amount charged: $%.2f</p>
			<p>Your tokens never expire and are spent before your free daily allowance.</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View your balance</a></p>
			<p>Thanks,<br>The Nexa Team</p>
		</body>
		</html>
	`, packName, formatTokens(tokens), amountUSD, billingURL)

	plainText := fmt.Sprintf(`
Thanks for your purchase!

Your %s pack is ready: %s tokens have been added to your balance.
Amount charged: $%.2f

Your tokens never expire and are spent before your free daily allowance.

View your balance: %s

Thanks,
The Nexa Team
	`, packName, formatTokens(tokens), amountUSD, billingURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, "", subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, subject, billingURL)
}

// SendLowBalanceWarning nudges the user before they run dry
func (s *Service) SendLowBalanceWarning(toEmail string, remaining int64) error {
	pricingURL := fmt.Sprintf("%s/pricing", s.baseURL)

	subject := "You're running low on Nexa tokens"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Running low on tokens</h2>
			<p>You have <strong>%s tokens</strong> left. Your free allowance refreshes daily, but premium models need a bit more headroom.</p>
			<p><a href="%s" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Top up your balance</a></p>
			<p>Thanks,<br>The Nexa Team</p>
		</body>
		</html>
	`, formatTokens(remaining), pricingURL)

	plainText := fmt.Sprintf(`
Running low on tokens

You have %s tokens left. Your free allowance refreshes daily, but premium
models need a bit more headroom.

Top up your balance: %s

Thanks,
The Nexa Team
	`, formatTokens(remaining), pricingURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, "", subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, subject, pricingURL)
}

// sendViaSendGrid sends an email through the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s", toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}

// formatTokens renders a token count with thousands separators
func formatTokens(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

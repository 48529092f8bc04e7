package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "Nexa", "https://app.nexa.ai", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "from@example.com", svc.fromEmail)
	assert.Equal(t, "Nexa", svc.fromName)
	assert.Equal(t, "https://app.nexa.ai", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("from@example.com", "Nexa", "https://app.nexa.ai", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendPurchaseReceipt_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "Nexa", "https://app.nexa.ai", "")

	err := svc.SendPurchaseReceipt("user@example.com", "plus", 2_000_000, 29.99)
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendLowBalanceWarning_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "Nexa", "https://app.nexa.ai", "")

	err := svc.SendLowBalanceWarning("user@example.com", 4_200)
	assert.NoError(t, err, "Console mode should not error")
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "500", formatTokens(500))
	assert.Equal(t, "50,000", formatTokens(50_000))
	assert.Equal(t, "2,000,000", formatTokens(2_000_000))
}

package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nexaai/nexa-backend/pkg/models"
)

// historyStore stubs only the listing the exporter reads.
type historyStore struct {
	records []models.TransactionRecord
	err     error
}

func (s *historyStore) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	return nil, nil
}

func (s *historyStore) CreateAccount(ctx context.Context, userID, email string) (*models.Account, error) {
	return nil, nil
}

func (s *historyStore) DeductTokens(ctx context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	return nil, nil
}

func (s *historyStore) AddTokens(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error) {
	return nil, nil
}

func (s *historyStore) RefreshDailyAllowance(ctx context.Context, userID string) error {
	return nil
}

func (s *historyStore) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	return s.records, s.err
}

func sampleRecords() []models.TransactionRecord {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.TransactionRecord{
		{
			ID:               2,
			UserID:           "user-1",
			ModelID:          "claude-3-5-sonnet",
			Provider:         "openai",
			TokensDeducted:   10_000,
			DeductedFromPaid: 10_000,
			ProviderCostUSD:  0.0412,
			CreatedAt:        created.Add(time.Hour),
		},
		{
			ID:               1,
			UserID:           "user-1",
			ModelID:          "gpt-4o-mini",
			Provider:         "openai",
			TokensDeducted:   500,
			DeductedFromFree: 500,
			ProviderCostUSD:  0.0004,
			CreatedAt:        created,
		},
	}
}

func TestTransactionsCSV(t *testing.T) {
	svc := NewService(&historyStore{records: sampleRecords()})

	var buf bytes.Buffer
	require.NoError(t, svc.TransactionsCSV(context.Background(), &buf, "user-1"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 records

	assert.Equal(t, "Model", rows[0][1])
	assert.Equal(t, "claude-3-5-sonnet", rows[1][1])
	assert.Equal(t, "10000", rows[1][4]) // from paid
	assert.Equal(t, "gpt-4o-mini", rows[2][1])
	assert.Equal(t, "500", rows[2][5]) // from free
}

func TestTransactionsCSV_StoreError(t *testing.T) {
	svc := NewService(&historyStore{err: assert.AnError})

	var buf bytes.Buffer
	err := svc.TransactionsCSV(context.Background(), &buf, "user-1")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestTransactionsExcel(t *testing.T) {
	svc := NewService(&historyStore{records: sampleRecords()})

	var buf bytes.Buffer
	require.NoError(t, svc.TransactionsExcel(context.Background(), &buf, "user-1"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	model, err := f.GetCellValue("Transactions", "B2")
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-sonnet", model)

	tokens, err := f.GetCellValue("Transactions", "D3")
	require.NoError(t, err)
	assert.Equal(t, "500", tokens)
}

package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nexaai/nexa-backend/pkg/domain"
)

// maxExportRows caps how much history one export pulls
const maxExportRows = 5000

// Service exports a user's token transaction history
type Service struct {
	store domain.BalanceStore
}

// NewService creates a new export service
func NewService(store domain.BalanceStore) *Service {
	return &Service{store: store}
}

// TransactionsCSV streams the user's transaction history as CSV
func (s *Service) TransactionsCSV(ctx context.Context, w io.Writer, userID string) error {
	records, err := s.store.ListRecentTransactions(ctx, userID, maxExportRows)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"ID", "Model", "Provider", "Tokens Deducted", "From Paid", "From Free",
		"Provider Cost USD", "Created At",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.ID),
			rec.ModelID,
			rec.Provider,
			strconv.FormatInt(rec.TokensDeducted, 10),
			strconv.FormatInt(rec.DeductedFromPaid, 10),
			strconv.FormatInt(rec.DeductedFromFree, 10),
			fmt.Sprintf("%.6f", rec.ProviderCostUSD),
			rec.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// TransactionsExcel streams the user's transaction history as an Excel file
func (s *Service) TransactionsExcel(ctx context.Context, w io.Writer, userID string) error {
	records, err := s.store.ListRecentTransactions(ctx, userID, maxExportRows)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{
		"ID", "Model", "Provider", "Tokens Deducted", "From Paid", "From Free",
		"Provider Cost USD", "Created At",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, rec := range records {
		row := rowIdx + 2 // Start from row 2 (after header)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.ModelID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.Provider)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.TokensDeducted)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rec.DeductedFromPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), rec.DeductedFromFree)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), rec.ProviderCostUSD)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), rec.CreatedAt.Format(time.RFC3339))
	}

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

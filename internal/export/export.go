// Package export writes ledger transactions to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// Row is one exported transaction.
type Row struct {
	ID             string `csv:"id"`
	Date           string `csv:"date"`
	Kind           string `csv:"kind"`
	Category       string `csv:"category"`
	Note           string `csv:"note"`
	OriginalAmount string `csv:"original_amount"`
	Currency       string `csv:"currency"`
	ExchangeRate   string `csv:"exchange_rate"`
	Amount         string `csv:"amount"`
}

// NewRow flattens tx. Amounts keep their full precision.
func NewRow(tx models.Transaction) Row {
	key := ""
	if tx.Category.IsValid() {
		key = tx.Category.Info().Key
	}
	return Row{
		ID:             tx.ID,
		Date:           dateutils.ToISODate(tx.Date),
		Kind:           tx.Kind().String(),
		Category:       key,
		Note:           tx.Note,
		OriginalAmount: tx.OriginalAmount.String(),
		Currency:       string(tx.Currency),
		ExchangeRate:   tx.ExchangeRate.String(),
		Amount:         tx.Amount.String(),
	}
}

// WriteCSV writes txns with a header row to w.
func WriteCSV(w io.Writer, txns []models.Transaction, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	rows := make([]Row, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, NewRow(tx))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if len(rows) == 0 {
		// gocsv writes nothing for an empty slice; keep the header.
		if err := csvWriter.Write(header()); err != nil {
			return fmt.Errorf("error writing CSV header: %w", err)
		}
		csvWriter.Flush()
		return csvWriter.Error()
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes txns to path, creating parent directories.
func WriteCSVFile(path string, txns []models.Transaction, delimiter rune, logger logging.Logger) error {
	logger = logging.OrDiscard(logger)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(path) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, txns, delimiter); err != nil {
		return err
	}

	logger.Info("Exported transactions to CSV",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(txns)))
	return nil
}

func header() []string {
	return []string{"id", "date", "kind", "category", "note", "original_amount", "currency", "exchange_rate", "amount"}
}

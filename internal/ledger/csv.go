package ledger

import (
	"fmt"
	"time"

	"github.com/theirongolddev/fintrack/internal/csvcodec"
)

// Export renders every stored transaction as CSV. It returns
// csvcodec.ErrNothingToExport when the store is empty.
func (l *Ledger) Export() (string, error) {
	txs, err := l.List()
	if err != nil {
		return "", err
	}
	return csvcodec.Encode(txs)
}

// Import decodes CSV text and appends the accepted rows to the existing
// transactions in a single write. Nothing is written if no row is accepted.
func (l *Ledger) Import(text string) (csvcodec.Result, error) {
	txs, err := l.List()
	if err != nil {
		return csvcodec.Result{}, err
	}

	imported, res := csvcodec.Decode(text, l.newID, l.now().UTC())
	if res.Skipped > 0 {
		l.log.Warn("skipped malformed rows", "skipped", res.Skipped, "imported", res.Imported)
	}
	if res.Imported == 0 {
		return res, nil
	}

	if err := l.save(append(txs, imported...)); err != nil {
		return csvcodec.Result{}, err
	}
	l.log.Info("imported transactions", "count", res.Imported)
	return res, nil
}

// ExportFilename names an export file after the given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("finance-tracker-%s.csv", now.Format("2006-01-02"))
}

package expenses

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// Records are persisted as bare three-column CSV rows with no header:
//
//	date,category,amount
//
// date is YYYY-MM-DD and amount carries two fraction digits. Categories
// containing a comma are quoted by encoding/csv on write; existing unquoted
// files keep the plain three-column shape and parse unchanged.

const (
	numFields   = 3
	dateFormat  = "2006-01-02"
	colDate     = 0
	colCategory = 1
	colAmount   = 2
)

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(r model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = r.Date.Format(dateFormat)
	row[colCategory] = strings.TrimSpace(r.Category)
	row[colAmount] = r.Amount.StringFixed(2)
	return row
}

// UnmarshalRecord converts a CSV row to a Record. Any row that does not
// yield a valid record is rejected whole; it is never partially included.
func UnmarshalRecord(record []string) (model.Record, error) {
	if len(record) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, strings.TrimSpace(record[colDate]))
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	category := strings.TrimSpace(record[colCategory])
	if category == "" {
		return model.Record{}, errors.New("empty category")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if !amount.IsPositive() {
		return model.Record{}, fmt.Errorf("amount %s is not positive", amount)
	}

	return model.Record{Date: date, Category: category, Amount: amount}, nil
}

// ReadRecords reads all well-formed rows from r in file order. Malformed
// rows (wrong arity, bad date, bad amount, blank fields, interleaved
// partial writes) are dropped rather than failing the batch; the drop count
// is returned so callers can report it. Only an underlying read failure is
// an error.
func ReadRecords(r io.Reader) (model.RecordSet, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		records model.RecordSet
		skipped int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("reading expenses CSV: %w", err)
		}

		rec, err := UnmarshalRecord(row)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// WriteRecords writes records to w, one row each.
func WriteRecords(w io.Writer, records model.RecordSet) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, r := range records {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// AppendRecord writes exactly one record row to w.
func AppendRecord(w io.Writer, r model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MarshalRecord(r)); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

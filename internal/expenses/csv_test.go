package expenses

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRoundTrip(t *testing.T) {
	records := model.RecordSet{
		{Date: date(2024, 1, 15), Category: "Food", Amount: dec("10.00")},
		{Date: date(2024, 2, 1), Category: "Travel", Amount: dec("127.50")},
	}

	var buf bytes.Buffer
	err := WriteRecords(&buf, records)
	require.NoError(t, err)

	got, skipped, err := ReadRecords(&buf)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, got, 2)

	for i := range records {
		assert.True(t, records[i].Date.Equal(got[i].Date))
		assert.Equal(t, records[i].Category, got[i].Category)
		assert.True(t, records[i].Amount.Equal(got[i].Amount), "amount mismatch row %d", i)
	}
}

func TestMarshalRecord_TwoFractionDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4.00", "4.00"},
		{"127.5", "127.50"},
		{"3500", "3500.00"},
		{"0.10", "0.10"},
		{"42.99", "42.99"},
	}
	for _, tt := range tests {
		row := MarshalRecord(model.Record{
			Date:     date(2024, 1, 1),
			Category: "Food",
			Amount:   dec(tt.input),
		})
		assert.Equal(t, tt.want, row[colAmount], "input %q", tt.input)
	}
}

func TestMarshalRecord_TrimsCategory(t *testing.T) {
	row := MarshalRecord(model.Record{
		Date:     date(2024, 1, 1),
		Category: "  Food  ",
		Amount:   dec("5.00"),
	})
	assert.Equal(t, "Food", row[colCategory])
}

func TestUnmarshalRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"wrong arity", []string{"2024-01-01", "Food"}},
		{"bad date", []string{"not-a-date", "Food", "10.00"}},
		{"bad amount", []string{"2024-01-01", "Food", "abc"}},
		{"zero amount", []string{"2024-01-01", "Food", "0.00"}},
		{"negative amount", []string{"2024-01-01", "Food", "-5.00"}},
		{"blank category", []string{"2024-01-01", "   ", "10.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRecord(tt.row)
			assert.Error(t, err)
		})
	}
}

func TestReadRecords_TolerantOfMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"2024-01-15,Food,10.00",
		"2024-01-16,Travel,abc",  // non-numeric amount
		"2024-01-17,Shopping",    // wrong arity
		"garbage",                // wrong arity
		"not-a-date,Food,5.00",   // bad date
		"",                       // blank line
		"2024-02-01,Food,20.00",  // good
		`2024-02-02,"a,b",30.00`, // quoted comma category, good
	}, "\n")

	got, skipped, err := ReadRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3, "only well-formed rows survive")
	assert.Equal(t, 4, skipped)

	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].Amount.Equal(dec("10.00")))
	assert.Equal(t, "Food", got[1].Category)
	assert.True(t, got[1].Amount.Equal(dec("20.00")))
	assert.Equal(t, "a,b", got[2].Category, "quoted category keeps its comma")
	assert.True(t, got[2].Amount.Equal(dec("30.00")))
}

func TestReadRecords_Empty(t *testing.T) {
	got, skipped, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, got)
}

func TestReadRecords_PartialLastLine(t *testing.T) {
	// An interleaved or partially-written trailing line is dropped, not
	// fatal to the rest of the load.
	input := "2024-01-15,Food,10.00\n2024-01-16,Tra"
	got, skipped, err := ReadRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, skipped)
}

func TestAppendRecord_QuotesEmbeddedComma(t *testing.T) {
	var buf bytes.Buffer
	err := AppendRecord(&buf, model.Record{
		Date:     date(2024, 3, 1),
		Category: "Food, Dining",
		Amount:   dec("12.34"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01,\"Food, Dining\",12.34\n", buf.String())
}

func TestDecimalPrecision(t *testing.T) {
	// 0.1+0.2 is the classic float64 trap; decimal arithmetic must survive
	// the CSV round-trip exactly.
	rec := model.Record{
		Date:     date(2024, 1, 1),
		Category: "Food",
		Amount:   dec("0.1").Add(dec("0.2")),
	}
	row := MarshalRecord(rec)
	got, err := UnmarshalRecord(row)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(dec("0.30")), "got %s", got.Amount)
}

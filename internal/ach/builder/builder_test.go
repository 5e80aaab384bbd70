package builder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacha-ach-builder/internal/ach/record"
)

func testSettings() Settings {
	return Settings{
		ImmediateDest:     "123456780",
		ImmediateOrg:      "123456789",
		ImmediateDestName: "YOUR BANK",
		ImmediateOrgName:  "YOUR COMPANY",
		CompanyID:         "1234567890",
	}
}

// payrollEntries is a mixed credit/debit batch with one addenda row.
func payrollEntries() []EntrySpec {
	return []EntrySpec{
		{
			Type:          "22",
			RoutingNumber: "12345678",
			AccountNumber: "11232132",
			Amount:        "10.00",
			Name:          "Alice Wanderdust",
			Addenda: []AddendaSpec{
				{PaymentRelatedInfo: "Here is some additional information"},
			},
		},
		{
			Type:          "27",
			RoutingNumber: "12345678",
			AccountNumber: "234234234",
			Amount:        "150.00",
			Name:          "Billy Holiday",
		},
		{
			Type:          "22",
			RoutingNumber: "12345678",
			AccountNumber: "123123123",
			Amount:        "12.13",
			Name:          "Rachel Welch",
			IDNumber:      "3333",
		},
	}
}

func payrollFile(t *testing.T) *File {
	t.Helper()
	f, err := New("A", testSettings())
	require.NoError(t, err)
	require.NoError(t, f.AddBatchWithOptions(record.SECPpd, payrollEntries(), true, true, BatchOptions{
		EffectiveDate: time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC),
	}))
	return f
}

func TestNewValidatesSettings(t *testing.T) {
	t.Run("AllMissing", func(t *testing.T) {
		_, err := New("A", Settings{})
		require.ErrorIs(t, err, ErrMissingSetting)
		assert.Contains(t, err.Error(), "immediate_dest")
		assert.Contains(t, err.Error(), "company_id")
	})

	t.Run("ShortImmediateDest", func(t *testing.T) {
		s := testSettings()
		s.ImmediateDest = "1234567"
		_, err := New("A", s)
		assert.ErrorIs(t, err, ErrMissingSetting)
	})

	t.Run("BadFileIDMod", func(t *testing.T) {
		_, err := New("a", testSettings())
		assert.ErrorIs(t, err, record.ErrInvalidCode)
	})
}

func TestRenderPayrollScenario(t *testing.T) {
	out := payrollFile(t).RenderToString(false)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 10, "8 data rows padded with fillers to one block")
	for i, line := range lines {
		assert.Len(t, line, record.RowWidth, "line %d", i)
	}

	wantTypes := []byte{'1', '5', '6', '7', '6', '6', '8', '9', '9', '9'}
	for i, line := range lines {
		assert.Equal(t, string(wantTypes[i]), line[0:1], "line %d record type", i)
	}

	t.Run("FillerRows", func(t *testing.T) {
		for _, line := range lines[8:] {
			assert.Equal(t, strings.Repeat("9", record.RowWidth), line)
		}
	})

	t.Run("FileControlTotals", func(t *testing.T) {
		control := lines[7]
		assert.Equal(t, "000001", control[1:7], "batch count")
		assert.Equal(t, "000001", control[7:13], "block count")
		assert.Equal(t, "00000004", control[13:21], "entry + addenda count")
		assert.Equal(t, "0037037034", control[21:31], "entry hash")
		assert.Equal(t, "000000015000", control[31:43], "total debit")
		assert.Equal(t, "000000002213", control[43:55], "total credit")
	})

	t.Run("AddendaIndicator", func(t *testing.T) {
		assert.Equal(t, "1", lines[2][78:79], "entry with addenda")
		assert.Equal(t, "0", lines[4][78:79], "entry without addenda")
	})

	t.Run("TraceNumbers", func(t *testing.T) {
		assert.Equal(t, "123456780000001", lines[2][79:94])
		assert.Equal(t, "123456780000002", lines[4][79:94])
		assert.Equal(t, "123456780000003", lines[5][79:94])
		assert.Equal(t, "0000001", lines[3][87:94], "addenda points at its entry")
	})
}

func TestRenderLineEndings(t *testing.T) {
	f := payrollFile(t)
	lf := f.RenderToString(false)
	crlf := f.RenderToString(true)

	assert.NotContains(t, lf, "\r")
	assert.Equal(t, lf, strings.ReplaceAll(crlf, "\r\n", "\n"))
	assert.Len(t, strings.Split(crlf, "\r\n"), 10)
	assert.False(t, strings.HasSuffix(lf, "\n"), "no line ending after the last filler")
}

func TestServiceClassDerivation(t *testing.T) {
	cases := []struct {
		name    string
		credits bool
		debits  bool
		want    string
	}{
		{"CreditsAndDebits", true, true, "200"},
		{"CreditsOnly", true, false, "220"},
		{"DebitsOnly", false, true, "225"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := New("A", testSettings())
			require.NoError(t, err)
			require.NoError(t, f.AddBatch(record.SECPpd, payrollEntries(), tc.credits, tc.debits))
			row := f.Batches()[0].Header().Render()
			assert.Equal(t, tc.want, row[1:4])
		})
	}

	t.Run("NeitherFlagRejected", func(t *testing.T) {
		f, err := New("A", testSettings())
		require.NoError(t, err)
		err = f.AddBatch(record.SECPpd, payrollEntries(), false, false)
		assert.ErrorIs(t, err, record.ErrInvalidCode)
	})
}

func TestAddBatchAtomicity(t *testing.T) {
	f, err := New("A", testSettings())
	require.NoError(t, err)

	bad := payrollEntries()
	bad[1].Amount = "not-a-number"
	require.Error(t, f.AddBatch(record.SECPpd, bad, true, true))

	assert.Empty(t, f.Batches())
	control := strings.Split(f.RenderToString(false), "\n")[1]
	assert.Equal(t, "000000", control[1:7], "batch count untouched after failed add")
}

func TestMultipleBatches(t *testing.T) {
	f, err := New("A", testSettings())
	require.NoError(t, err)
	require.NoError(t, f.AddBatch(record.SECPpd, payrollEntries(), true, true))
	require.NoError(t, f.AddBatch(record.SECCcd, payrollEntries()[1:2], false, true))

	require.Len(t, f.Batches(), 2)
	assert.Equal(t, "0000001", f.Batches()[0].Header().BatchID())
	assert.Equal(t, "0000002", f.Batches()[1].Header().BatchID())

	// 2 file rows + 4 batch rows + 4 entadd + 1 entadd = 11 data rows.
	lines := strings.Split(f.RenderToString(false), "\n")
	require.Len(t, lines, 20, "11 data rows padded to two blocks")
	control := lines[10]
	assert.Equal(t, "000002", control[1:7], "batch count")
	assert.Equal(t, "000002", control[7:13], "block count")
	assert.Equal(t, "00000005", control[13:21], "entry + addenda count")
	assert.Equal(t, "000000030000", control[31:43], "debits summed across batches")
}

func TestBatchControlMirrorsHeader(t *testing.T) {
	b := payrollFile(t).Batches()[0]
	header, control := b.Header().Render(), b.Control().Render()

	assert.Equal(t, header[1:4], control[1:4], "service class")
	assert.Equal(t, header[40:50], control[44:54], "company id")
	assert.Equal(t, header[79:87], control[79:87], "originating DFI")
	assert.Equal(t, header[87:94], control[87:94], "batch id")
	assert.Equal(t, 4, b.Control().EntaddCount())
	assert.Equal(t, int64(37037034), b.Control().EntryHash())
	assert.Equal(t, 15000, b.Control().DebitAmount())
	assert.Equal(t, 2213, b.Control().CreditAmount())
}

func TestBlockCount(t *testing.T) {
	assert.Equal(t, 1, blockCount(9))
	assert.Equal(t, 1, blockCount(10))
	assert.Equal(t, 2, blockCount(11))
}

func TestTruncateHash(t *testing.T) {
	assert.Equal(t, "37037034", truncateHash(37037034))
	assert.Equal(t, "2345678901", truncateHash(12345678901))
}

func TestAmountCents(t *testing.T) {
	for input, want := range map[string]int{
		"10.00":  1000,
		"12.13":  1213,
		"150.00": 15000,
		"0.01":   1,
	} {
		got, err := amountCents(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "amount %s", input)
	}

	_, err := amountCents("ten dollars")
	assert.Error(t, err)
}

func TestNineDigitRoutingKeepsSuppliedCheckDigit(t *testing.T) {
	f, err := New("A", testSettings())
	require.NoError(t, err)
	entries := []EntrySpec{{
		Type:          "22",
		RoutingNumber: "123232318",
		AccountNumber: "11232132",
		Amount:        "10.00",
		Name:          "Alice Wanderdust",
	}}
	require.NoError(t, f.AddBatch(record.SECPpd, entries, true, false))

	row := f.Batches()[0].Entries()[0].Detail().Render()
	assert.Equal(t, record.RowWidth, len(row))
	assert.Equal(t, "123232318", row[3:12])
}

package builder

import (
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/record"
)

// Transaction codes counted into the debit and credit batch totals.
var (
	debitCodes  = map[string]bool{"27": true, "37": true, "28": true, "38": true}
	creditCodes = map[string]bool{"22": true, "32": true, "23": true, "33": true}
)

// Entry is one entry detail row plus its addenda rows, insertion-ordered.
type Entry struct {
	detail  *record.EntryDetail
	addenda []*record.AddendaRecord
}

// Detail returns the entry's detail record.
func (e *Entry) Detail() *record.EntryDetail { return e.detail }

// Addenda returns the entry's addenda records.
func (e *Entry) Addenda() []*record.AddendaRecord { return e.addenda }

// Batch is one batch header, its entries and the control record derived
// from them.
type Batch struct {
	header  *record.BatchHeader
	entries []*Entry
	control *record.BatchControl
}

// Header returns the batch's header record.
func (b *Batch) Header() *record.BatchHeader { return b.header }

// Entries returns the batch's entries in insertion order.
func (b *Batch) Entries() []*Entry { return b.entries }

// Control returns the batch's derived control record.
func (b *Batch) Control() *record.BatchControl { return b.control }

// newBatch pairs a header with its entries and computes the control
// record: entry + addenda count, entry hash, debit and credit totals, and
// the identifying fields mirrored from the header.
func newBatch(header *record.BatchHeader, entries []*Entry) (*Batch, error) {
	control, err := record.NewBatchControl(header.ServClsCode())
	if err != nil {
		return nil, err
	}

	entadd := 0
	debit, credit := 0, 0
	var hash int64
	for _, entry := range entries {
		entadd += 1 + len(entry.addenda)
		prefix, err := strconv.ParseInt(entry.detail.RecvDFIID()[:8], 10, 64)
		if err != nil {
			return nil, err
		}
		hash += prefix
		code := entry.detail.TransactionCode()
		if debitCodes[code] {
			debit += entry.detail.AmountCents()
		}
		if creditCodes[code] {
			credit += entry.detail.AmountCents()
		}
	}

	if err := control.SetEntaddCount(entadd); err != nil {
		return nil, err
	}
	if err := control.SetEntryHash(truncateHash(hash)); err != nil {
		return nil, err
	}
	if err := control.SetDebitAmount(debit); err != nil {
		return nil, err
	}
	if err := control.SetCreditAmount(credit); err != nil {
		return nil, err
	}
	if err := control.SetCompanyID(header.CompanyID()); err != nil {
		return nil, err
	}
	if err := control.SetOrigDFIID(header.OrigDFIID()); err != nil {
		return nil, err
	}
	if err := control.SetBatchID(header.BatchID()); err != nil {
		return nil, err
	}

	return &Batch{header: header, entries: entries, control: control}, nil
}

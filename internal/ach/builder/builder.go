// Package builder assembles NACHA ACH files. A File owns one header, an
// append-only list of batches and a control record recomputed eagerly on
// every AddBatch, so the document is always renderable and its totals
// always reconcile.
package builder

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/nacha-ach-builder/internal/ach/field"
	"github.com/nacha-ach-builder/internal/ach/record"
)

// ErrMissingSetting reports a required originator setting that was not
// supplied.
var ErrMissingSetting = errors.New("required setting is missing")

// Settings is the originator configuration bundle every file needs. All
// fields are required.
type Settings struct {
	ImmediateDest     string `json:"immediate_dest"`
	ImmediateOrg      string `json:"immediate_org"`
	ImmediateDestName string `json:"immediate_dest_name"`
	ImmediateOrgName  string `json:"immediate_org_name"`
	CompanyID         string `json:"company_id"`
}

func (s Settings) validate() error {
	var missing []string
	if s.ImmediateDest == "" {
		missing = append(missing, "immediate_dest")
	}
	if s.ImmediateOrg == "" {
		missing = append(missing, "immediate_org")
	}
	if s.ImmediateDestName == "" {
		missing = append(missing, "immediate_dest_name")
	}
	if s.ImmediateOrgName == "" {
		missing = append(missing, "immediate_org_name")
	}
	if s.CompanyID == "" {
		missing = append(missing, "company_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}
	if len(s.ImmediateDest) < 8 {
		return fmt.Errorf("%w: immediate_dest must carry an 8-digit routing prefix", ErrMissingSetting)
	}
	return nil
}

// routingPrefix is the originator's 8-digit routing prefix used for batch
// origination and trace numbers.
func (s Settings) routingPrefix() string {
	return s.ImmediateDest[:8]
}

// EntrySpec describes one entry to add to a batch.
type EntrySpec struct {
	Type          string        `json:"type"`
	RoutingNumber string        `json:"routing_number"`
	AccountNumber string        `json:"account_number"`
	Amount        string        `json:"amount"`
	Name          string        `json:"name"`
	IDNumber      string        `json:"id_number,omitempty"`
	Addenda       []AddendaSpec `json:"addenda,omitempty"`
}

// AddendaSpec describes one addenda row attached to an entry.
type AddendaSpec struct {
	PaymentRelatedInfo string `json:"payment_related_info"`
}

// BatchOptions carries the optional AddBatch parameters. A zero
// EffectiveDate defaults to tomorrow; an empty CompanyID falls back to the
// file settings.
type BatchOptions struct {
	EffectiveDate time.Time
	CompanyID     string
}

// File is the in-memory NACHA document: one header, ordered batches, one
// derived control record. It is built once and not safe for concurrent
// mutation.
type File struct {
	settings Settings
	header   *record.FileHeader
	batches  []*Batch
	control  *record.FileControl
}

// New constructs a file with its header stamped immediately. fileIDMod
// should be "A" for the first file of the day, "B" for the second and so
// on.
func New(fileIDMod string, settings Settings) (*File, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}
	header, err := record.NewFileHeader(
		settings.ImmediateDest,
		settings.ImmediateOrg,
		fileIDMod,
		settings.ImmediateDestName,
		settings.ImmediateOrgName,
		"",
	)
	if err != nil {
		return nil, err
	}
	f := &File{settings: settings, header: header}
	if err := f.setControl(); err != nil {
		return nil, err
	}
	return f, nil
}

// Batches returns the file's batches in insertion order, which is also
// rendering order.
func (f *File) Batches() []*Batch { return f.batches }

// AddBatch builds a batch from the entry specifications and appends it to
// the file, with the effective entry date defaulting to tomorrow and the
// company ID taken from the file settings.
func (f *File) AddBatch(sec record.SECCode, entries []EntrySpec, credits, debits bool) error {
	return f.AddBatchWithOptions(sec, entries, credits, debits, BatchOptions{})
}

// AddBatchWithOptions is AddBatch with explicit effective date and company
// ID overrides. The call is atomic: on any error the file's batch list and
// control totals are untouched.
func (f *File) AddBatchWithOptions(sec record.SECCode, entries []EntrySpec, credits, debits bool, opts BatchOptions) error {
	if _, err := record.ParseSECCode(string(sec)); err != nil {
		return err
	}
	servCls, err := serviceClassFor(credits, debits)
	if err != nil {
		return err
	}

	effDate := opts.EffectiveDate
	if effDate.IsZero() {
		effDate = time.Now().AddDate(0, 0, 1)
	}
	companyID := opts.CompanyID
	if companyID == "" {
		companyID = f.settings.CompanyID
	}

	header, err := record.NewBatchHeader(record.BatchHeaderParams{
		ServClsCode:   string(servCls),
		CompanyName:   f.settings.ImmediateOrgName,
		CompanyID:     companyID,
		StdEntClsCode: string(sec),
		EntryDesc:     entryDesc(sec),
		EffEntDate:    effDate.Format("060102"),
		OrigStatCode:  "1",
		OrigDFIID:     f.settings.routingPrefix(),
		BatchID:       len(f.batches) + 1,
	})
	if err != nil {
		return err
	}

	built := make([]*Entry, 0, len(entries))
	for i, spec := range entries {
		entry, err := f.buildEntry(sec, spec, i+1)
		if err != nil {
			return err
		}
		built = append(built, entry)
	}

	batch, err := newBatch(header, built)
	if err != nil {
		return err
	}
	f.batches = append(f.batches, batch)
	return f.setControl()
}

// buildEntry turns one entry specification into a validated entry detail
// record plus its addenda. seq is the 1-based position within the batch.
func (f *File) buildEntry(sec record.SECCode, spec EntrySpec, seq int) (*Entry, error) {
	detail, err := record.NewEntryDetail(sec)
	if err != nil {
		return nil, err
	}
	if spec.IDNumber != "" {
		if err := detail.SetIDNumber(spec.IDNumber); err != nil {
			return nil, err
		}
	}
	if err := detail.SetTransactionCode(spec.Type); err != nil {
		return nil, err
	}
	if err := detail.SetRecvDFIID(spec.RoutingNumber); err != nil {
		return nil, err
	}
	if len(spec.RoutingNumber) < 9 {
		if err := detail.CalcCheckDigit(); err != nil {
			return nil, err
		}
	} else {
		if err := detail.SetCheckDigit(spec.RoutingNumber[8:9]); err != nil {
			return nil, err
		}
	}
	if err := detail.SetDFIAcntNum(spec.AccountNumber); err != nil {
		return nil, err
	}
	cents, err := amountCents(spec.Amount)
	if err != nil {
		return nil, err
	}
	if err := detail.SetAmountCents(cents); err != nil {
		return nil, err
	}
	name := strings.ToUpper(spec.Name)
	if len(name) > 22 {
		name = name[:22]
	}
	if err := detail.SetIndName(name); err != nil {
		return nil, err
	}
	trace := f.settings.routingPrefix() + fmt.Sprintf("%07d", seq)
	if err := detail.SetTraceNum(trace); err != nil {
		return nil, err
	}

	addenda := make([]*record.AddendaRecord, 0, len(spec.Addenda))
	for j, ad := range spec.Addenda {
		rec, err := record.NewAddendaRecord(sec)
		if err != nil {
			return nil, err
		}
		if err := rec.SetPmtRelInfo(strings.ToUpper(ad.PaymentRelatedInfo)); err != nil {
			return nil, err
		}
		if err := rec.SetAddSeqNum(j + 1); err != nil {
			return nil, err
		}
		if err := rec.SetEntDetSeqNum(trace[len(trace)-7:]); err != nil {
			return nil, err
		}
		addenda = append(addenda, rec)
	}
	if len(addenda) > 0 {
		if err := detail.SetAddRecInd("1"); err != nil {
			return nil, err
		}
	}

	return &Entry{detail: detail, addenda: addenda}, nil
}

// setControl recomputes the file control record from the current batches.
func (f *File) setControl() error {
	control, err := record.NewFileControl(
		len(f.batches),
		blockCount(f.lines()),
		f.entaddCount(),
		f.entryHash(),
		f.debitAmount(),
		f.creditAmount(),
	)
	if err != nil {
		return err
	}
	f.control = control
	return nil
}

// lines counts the physical data rows: file header and control, batch
// header and control per batch, and every entry and addenda row.
func (f *File) lines() int {
	return 2 + 2*len(f.batches) + f.entaddCount()
}

func (f *File) entaddCount() int {
	total := 0
	for _, b := range f.batches {
		total += b.control.EntaddCount()
	}
	return total
}

// entryHash sums the per-batch entry hashes, keeping only the lowest 10
// decimal digits when the sum overflows the field.
func (f *File) entryHash() string {
	var sum int64
	for _, b := range f.batches {
		sum += b.control.EntryHash()
	}
	return truncateHash(sum)
}

func (f *File) debitAmount() int {
	total := 0
	for _, b := range f.batches {
		total += b.control.DebitAmount()
	}
	return total
}

func (f *File) creditAmount() int {
	total := 0
	for _, b := range f.batches {
		total += b.control.CreditAmount()
	}
	return total
}

// blockCount is the number of 10-line blocks the file occupies after
// filler padding.
func blockCount(lines int) int {
	return (lines + 9) / 10
}

// truncateHash renders a hash sum, keeping only the lowest 10 decimal
// digits when it is longer.
func truncateHash(sum int64) string {
	s := strconv.FormatInt(sum, 10)
	if len(s) > 10 {
		s = s[len(s)-10:]
	}
	return s
}

// serviceClassFor derives the batch service class from the credit/debit
// flags.
func serviceClassFor(credits, debits bool) (record.ServiceClass, error) {
	switch {
	case credits && debits:
		return record.ServiceClassMixed, nil
	case credits:
		return record.ServiceClassCredits, nil
	case debits:
		return record.ServiceClassDebits, nil
	}
	return "", fmt.Errorf("serv_cls_code: batch must carry credits, debits or both: %w", record.ErrInvalidCode)
}

// entryDesc derives the batch entry description from the SEC code.
func entryDesc(sec record.SECCode) string {
	switch sec {
	case record.SECPpd:
		return "PAYROLL"
	case record.SECCcd:
		return "DUES"
	}
	return "OTHER"
}

// amountCents converts a decimal amount string to integer cents.
func amountCents(amount string) (int, error) {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", amount, field.ErrNotNumeric)
	}
	return int(math.Round(v * 100)), nil
}

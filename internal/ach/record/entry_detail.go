package record

import (
	"fmt"
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// EntryDetail is a type-6 record. Which of its optional columns appear on
// the row, and how wide they are, depends on the batch's SEC code. The
// receiving DFI identification accepts either the 8-digit form (separate
// check digit column) or the 9-digit form with the check digit embedded, in
// which case the check digit column is omitted from the row.
type EntryDetail struct {
	sec SECCode

	transactionCode string
	recvDFIID       string
	checkDigit      string
	dfiAcntNum      string
	amount          string

	chkSerialNum     string
	indName          string
	discData         string
	idNumber         string
	indID            string
	numAddRecs       string
	recvCmpyName     string
	terminalCity     string
	terminalState    string
	cardTrTypCodePos string
	cardTrTypCodeShr string
	cardExpDate      string
	docRefNum        string
	indCardAcctNum   string
	pmtTypeCode      string

	addRecInd string
	traceNum  string
}

// NewEntryDetail builds an entry detail with blank defaults for the given
// SEC code. Variant-width columns default to the width that code selects.
func NewEntryDetail(sec SECCode) (*EntryDetail, error) {
	if _, err := ParseSECCode(string(sec)); err != nil {
		return nil, err
	}
	return &EntryDetail{
		sec:              sec,
		transactionCode:  field.Zeros(2),
		recvDFIID:        field.Zeros(8),
		checkDigit:       field.Zeros(1),
		dfiAcntNum:       field.Spaces(17),
		amount:           field.Zeros(10),
		chkSerialNum:     field.Spaces(chkSerialLen(sec)),
		indName:          field.Spaces(indNameLen(sec)),
		discData:         field.Spaces(2),
		idNumber:         field.Spaces(15),
		indID:            field.Spaces(22),
		numAddRecs:       field.Zeros(4),
		recvCmpyName:     field.Spaces(16),
		terminalCity:     field.Spaces(4),
		terminalState:    field.Spaces(2),
		cardTrTypCodePos: field.Spaces(2),
		cardTrTypCodeShr: field.Zeros(2),
		cardExpDate:      field.Zeros(4),
		docRefNum:        field.Zeros(11),
		indCardAcctNum:   field.Zeros(22),
		pmtTypeCode:      field.Spaces(2),
		addRecInd:        "0",
		traceNum:         field.Zeros(15),
	}, nil
}

func (e *EntryDetail) SetTransactionCode(value string) error {
	v, err := field.Numeric(value, 2)
	if err != nil {
		return fmt.Errorf("transaction_code %q: %w", value, err)
	}
	e.transactionCode = v
	return nil
}

// SetRecvDFIID validates the receiving DFI identification, attempting the
// 8-digit form first and falling back to the 9-digit form.
func (e *EntryDetail) SetRecvDFIID(value string) error {
	v, err := field.Numeric(value, 8)
	if err != nil {
		v, err = field.Numeric(value, 9)
		if err != nil {
			return fmt.Errorf("recv_dfi_id %q: %w", value, err)
		}
	}
	e.recvDFIID = v
	return nil
}

func (e *EntryDetail) SetCheckDigit(value string) error {
	v, err := field.Numeric(value, 1)
	if err != nil {
		return fmt.Errorf("check_digit %q: %w", value, err)
	}
	e.checkDigit = v
	return nil
}

// CalcCheckDigit computes and stores the check digit for the current
// 8-digit receiving DFI identification.
func (e *EntryDetail) CalcCheckDigit() error {
	digit, err := CheckDigit(e.recvDFIID)
	if err != nil {
		return err
	}
	e.checkDigit = digit
	return nil
}

func (e *EntryDetail) SetDFIAcntNum(value string) error {
	v, err := field.AlphaNumeric(value, 17)
	if err != nil {
		return fmt.Errorf("dfi_acnt_num %q: %w", value, err)
	}
	e.dfiAcntNum = v
	return nil
}

// SetAmountCents stores the entry amount, already converted to cents.
func (e *EntryDetail) SetAmountCents(cents int) error {
	v, err := field.Numeric(strconv.Itoa(cents), 10)
	if err != nil {
		return fmt.Errorf("amount %d: %w", cents, err)
	}
	e.amount = v
	return nil
}

func (e *EntryDetail) SetChkSerialNum(value string) error {
	v, err := field.AlphaNumeric(value, chkSerialLen(e.sec))
	if err != nil {
		return fmt.Errorf("chk_serial_num %q: %w", value, err)
	}
	e.chkSerialNum = v
	return nil
}

func (e *EntryDetail) SetIndName(value string) error {
	v, err := field.AlphaNumeric(value, indNameLen(e.sec))
	if err != nil {
		return fmt.Errorf("ind_name %q: %w", value, err)
	}
	e.indName = v
	return nil
}

func (e *EntryDetail) SetDiscData(value string) error {
	v, err := field.AlphaNumeric(value, 2)
	if err != nil {
		return fmt.Errorf("disc_data %q: %w", value, err)
	}
	e.discData = v
	return nil
}

func (e *EntryDetail) SetIDNumber(value string) error {
	v, err := field.AlphaNumeric(value, 15)
	if err != nil {
		return fmt.Errorf("id_number %q: %w", value, err)
	}
	e.idNumber = v
	return nil
}

func (e *EntryDetail) SetIndID(value string) error {
	v, err := field.AlphaNumeric(value, 22)
	if err != nil {
		return fmt.Errorf("ind_id %q: %w", value, err)
	}
	e.indID = v
	return nil
}

func (e *EntryDetail) SetNumAddRecs(value string) error {
	v, err := field.Numeric(value, 4)
	if err != nil {
		return fmt.Errorf("num_add_recs %q: %w", value, err)
	}
	e.numAddRecs = v
	return nil
}

func (e *EntryDetail) SetRecvCmpyName(value string) error {
	v, err := field.AlphaNumeric(value, 16)
	if err != nil {
		return fmt.Errorf("recv_cmpy_name %q: %w", value, err)
	}
	e.recvCmpyName = v
	return nil
}

func (e *EntryDetail) SetTerminalCity(value string) error {
	v, err := field.AlphaNumeric(value, 4)
	if err != nil {
		return fmt.Errorf("terminal_city %q: %w", value, err)
	}
	e.terminalCity = v
	return nil
}

func (e *EntryDetail) SetTerminalState(value string) error {
	v, err := field.AlphaNumeric(value, 2)
	if err != nil {
		return fmt.Errorf("terminal_state %q: %w", value, err)
	}
	e.terminalState = v
	return nil
}

func (e *EntryDetail) SetCardTrTypCodePos(value string) error {
	v, err := field.AlphaNumeric(value, 2)
	if err != nil {
		return fmt.Errorf("card_tr_typ_code_pos %q: %w", value, err)
	}
	e.cardTrTypCodePos = v
	return nil
}

func (e *EntryDetail) SetCardTrTypCodeShr(value string) error {
	v, err := field.Numeric(value, 2)
	if err != nil {
		return fmt.Errorf("card_tr_typ_code_shr %q: %w", value, err)
	}
	e.cardTrTypCodeShr = v
	return nil
}

func (e *EntryDetail) SetCardExpDate(value string) error {
	v, err := field.Numeric(value, 4)
	if err != nil {
		return fmt.Errorf("card_exp_date %q: %w", value, err)
	}
	e.cardExpDate = v
	return nil
}

func (e *EntryDetail) SetDocRefNum(value string) error {
	v, err := field.Numeric(value, 11)
	if err != nil {
		return fmt.Errorf("doc_ref_num %q: %w", value, err)
	}
	e.docRefNum = v
	return nil
}

func (e *EntryDetail) SetIndCardAcctNum(value string) error {
	v, err := field.Numeric(value, 22)
	if err != nil {
		return fmt.Errorf("ind_card_acct_num %q: %w", value, err)
	}
	e.indCardAcctNum = v
	return nil
}

func (e *EntryDetail) SetPmtTypeCode(value string) error {
	v, err := field.AlphaNumeric(value, 2)
	if err != nil {
		return fmt.Errorf("pmt_type_code %q: %w", value, err)
	}
	e.pmtTypeCode = v
	return nil
}

// SetAddRecInd flags whether addenda rows follow this entry.
func (e *EntryDetail) SetAddRecInd(value string) error {
	v, err := field.Binary(value)
	if err != nil {
		return fmt.Errorf("add_rec_ind %q: %w", value, err)
	}
	e.addRecInd = v
	return nil
}

func (e *EntryDetail) SetTraceNum(value string) error {
	v, err := field.Numeric(value, 15)
	if err != nil {
		return fmt.Errorf("trace_num %q: %w", value, err)
	}
	e.traceNum = v
	return nil
}

// Set assigns a field by its layout name.
func (e *EntryDetail) Set(name, value string) error {
	setters := map[string]func(string) error{
		"transaction_code":     e.SetTransactionCode,
		"recv_dfi_id":          e.SetRecvDFIID,
		"check_digit":          e.SetCheckDigit,
		"dfi_acnt_num":         e.SetDFIAcntNum,
		"chk_serial_num":       e.SetChkSerialNum,
		"ind_name":             e.SetIndName,
		"disc_data":            e.SetDiscData,
		"id_number":            e.SetIDNumber,
		"ind_id":               e.SetIndID,
		"num_add_recs":         e.SetNumAddRecs,
		"recv_cmpy_name":       e.SetRecvCmpyName,
		"terminal_city":        e.SetTerminalCity,
		"terminal_state":       e.SetTerminalState,
		"card_tr_typ_code_pos": e.SetCardTrTypCodePos,
		"card_tr_typ_code_shr": e.SetCardTrTypCodeShr,
		"card_exp_date":        e.SetCardExpDate,
		"doc_ref_num":          e.SetDocRefNum,
		"ind_card_acct_num":    e.SetIndCardAcctNum,
		"pmt_type_code":        e.SetPmtTypeCode,
		"add_rec_ind":          e.SetAddRecInd,
		"trace_num":            e.SetTraceNum,
	}
	if set, ok := setters[name]; ok {
		return set(value)
	}
	if name == "amount" {
		v, err := field.Numeric(value, 10)
		if err != nil {
			return fmt.Errorf("amount %q: %w", value, err)
		}
		e.amount = v
		return nil
	}
	return fmt.Errorf("entry detail field %q: %w", name, ErrUnknownField)
}

// Accessors used by the builder's control computation.

func (e *EntryDetail) SEC() SECCode            { return e.sec }
func (e *EntryDetail) TransactionCode() string { return e.transactionCode }
func (e *EntryDetail) RecvDFIID() string       { return e.recvDFIID }
func (e *EntryDetail) TraceNum() string        { return e.traceNum }

// AmountCents returns the entry amount in cents.
func (e *EntryDetail) AmountCents() int {
	n, _ := strconv.Atoi(e.amount)
	return n
}

// Render returns the 94-character entry detail row. The SEC code was
// validated at construction, so the switch covers every case.
func (e *EntryDetail) Render() string {
	row := string(TypeEntryDetail) +
		e.transactionCode +
		e.recvDFIID
	if len(e.recvDFIID) < 9 {
		row += e.checkDigit
	}
	row += e.dfiAcntNum + e.amount

	switch e.sec {
	case SECArc, SECBoc, SECRck:
		row += e.chkSerialNum + e.indName + e.discData
	case SECCcd, SECPpd, SECTel:
		row += e.idNumber + e.indName + e.discData
	case SECCie, SECMte:
		row += e.indName + e.indID + e.discData
	case SECCtx:
		row += e.idNumber + e.numAddRecs + e.recvCmpyName + field.Spaces(2) + e.discData
	case SECPop:
		row += e.chkSerialNum + e.terminalCity + e.terminalState + e.indName + e.discData
	case SECPos:
		row += e.idNumber + e.indName + e.cardTrTypCodePos
	case SECShr:
		row += e.cardExpDate + e.docRefNum + e.indCardAcctNum + e.cardTrTypCodeShr
	case SECWeb:
		row += e.idNumber + e.indName + e.pmtTypeCode
	}

	return row + e.addRecInd + e.traceNum
}

func (e *EntryDetail) RowLength() int {
	return len(e.Render())
}

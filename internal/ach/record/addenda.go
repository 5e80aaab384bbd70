package record

import (
	"fmt"
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// addendaTypeCode is fixed for the payment-related addenda this module
// produces.
const addendaTypeCode = "05"

// AddendaRecord is a type-7 record following an entry detail. MTE batches
// carry transaction/terminal descriptive fields, POS and SHR carry
// reference + terminal + authorization fields, every other SEC code carries
// free-form payment-related text plus sequence numbers.
type AddendaRecord struct {
	sec SECCode

	transDesc       string
	netIDCode       string
	termIDCode      string
	transSerialCode string
	transDate       string
	transTime       string
	terminalLoc     string
	terminalCity    string
	terminalState   string
	refInfo1        string
	refInfo2        string
	authCardExp     string
	pmtRelInfo      string
	traceNum        string
	addSeqNum       string
	entDetSeqNum    string
}

// NewAddendaRecord builds an addenda record with blank defaults for the
// given SEC code.
func NewAddendaRecord(sec SECCode) (*AddendaRecord, error) {
	if _, err := ParseSECCode(string(sec)); err != nil {
		return nil, err
	}
	return &AddendaRecord{
		sec:             sec,
		transDesc:       field.Spaces(7),
		netIDCode:       field.Spaces(3),
		termIDCode:      field.Spaces(6),
		transSerialCode: field.Spaces(6),
		transDate:       field.Zeros(4),
		transTime:       field.Zeros(6),
		terminalLoc:     field.Spaces(27),
		terminalCity:    field.Spaces(15),
		terminalState:   field.Spaces(2),
		refInfo1:        field.Spaces(7),
		refInfo2:        field.Spaces(3),
		authCardExp:     field.Spaces(6),
		pmtRelInfo:      field.Spaces(80),
		traceNum:        field.Zeros(15),
		addSeqNum:       field.Zeros(4),
		entDetSeqNum:    field.Zeros(7),
	}, nil
}

func (a *AddendaRecord) SetPmtRelInfo(value string) error {
	v, err := field.AlphaNumeric(value, 80)
	if err != nil {
		return fmt.Errorf("pmt_rel_info %q: %w", value, err)
	}
	a.pmtRelInfo = v
	return nil
}

// SetAddSeqNum records the addenda's 1-based position within its entry.
func (a *AddendaRecord) SetAddSeqNum(n int) error {
	v, err := field.Numeric(strconv.Itoa(n), 4)
	if err != nil {
		return fmt.Errorf("add_seq_num %d: %w", n, err)
	}
	a.addSeqNum = v
	return nil
}

// SetEntDetSeqNum records the last 7 digits of the owning entry's trace
// number.
func (a *AddendaRecord) SetEntDetSeqNum(value string) error {
	v, err := field.Numeric(value, 7)
	if err != nil {
		return fmt.Errorf("ent_det_seq_num %q: %w", value, err)
	}
	a.entDetSeqNum = v
	return nil
}

func (a *AddendaRecord) SetTraceNum(value string) error {
	v, err := field.Numeric(value, 15)
	if err != nil {
		return fmt.Errorf("trace_num %q: %w", value, err)
	}
	a.traceNum = v
	return nil
}

// Set assigns a field by its layout name.
func (a *AddendaRecord) Set(name, value string) error {
	alpha := map[string]struct {
		dst *string
		len int
	}{
		"trans_desc":        {&a.transDesc, 7},
		"net_id_code":       {&a.netIDCode, 3},
		"term_id_code":      {&a.termIDCode, 6},
		"trans_serial_code": {&a.transSerialCode, 6},
		"terminal_loc":      {&a.terminalLoc, 27},
		"terminal_city":     {&a.terminalCity, 15},
		"terminal_state":    {&a.terminalState, 2},
		"ref_info_1":        {&a.refInfo1, 7},
		"ref_info_2":        {&a.refInfo2, 3},
		"auth_card_exp":     {&a.authCardExp, 6},
		"pmt_rel_info":      {&a.pmtRelInfo, 80},
	}
	if f, ok := alpha[name]; ok {
		v, err := field.AlphaNumeric(value, f.len)
		if err != nil {
			return fmt.Errorf("%s %q: %w", name, value, err)
		}
		*f.dst = v
		return nil
	}

	numeric := map[string]struct {
		dst *string
		len int
	}{
		"trans_date":      {&a.transDate, 4},
		"trans_time":      {&a.transTime, 6},
		"trace_num":       {&a.traceNum, 15},
		"ent_det_seq_num": {&a.entDetSeqNum, 7},
		"add_seq_num":     {&a.addSeqNum, 4},
	}
	if f, ok := numeric[name]; ok {
		v, err := field.Numeric(value, f.len)
		if err != nil {
			return fmt.Errorf("%s %q: %w", name, value, err)
		}
		*f.dst = v
		return nil
	}

	return fmt.Errorf("addenda field %q: %w", name, ErrUnknownField)
}

// Render returns the 94-character addenda row.
func (a *AddendaRecord) Render() string {
	row := string(TypeAddenda) + addendaTypeCode

	switch a.sec {
	case SECMte:
		return row + a.transDesc +
			a.netIDCode +
			a.termIDCode +
			a.transSerialCode +
			a.transDate +
			a.transTime +
			a.terminalLoc +
			a.terminalCity +
			a.terminalState +
			a.traceNum
	case SECPos, SECShr:
		return row + a.refInfo1 +
			a.refInfo2 +
			a.termIDCode +
			a.transSerialCode +
			a.transDate +
			a.authCardExp +
			a.terminalLoc +
			a.terminalCity +
			a.terminalState +
			a.traceNum
	}

	return row + a.pmtRelInfo + a.addSeqNum + a.entDetSeqNum
}

func (a *AddendaRecord) RowLength() int {
	return len(a.Render())
}

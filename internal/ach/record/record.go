// Package record implements the six NACHA record kinds. Each kind is a
// struct whose fields are validated once at construction and mutated only
// through typed setters that rerun the same validator, so a record never
// holds a value that could not appear on the wire. Every rendered row is
// exactly 94 characters.
package record

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// Common errors
var (
	ErrUnknownField = errors.New("field name not declared for this record kind")
	ErrInvalidCode  = errors.New("code outside its enumerated set")
)

// RowWidth is the fixed NACHA line width.
const RowWidth = 94

// Record type codes, the first character of every row.
const (
	TypeFileHeader   = '1'
	TypeBatchHeader  = '5'
	TypeEntryDetail  = '6'
	TypeAddenda      = '7'
	TypeBatchControl = '8'
	TypeFileControl  = '9'
)

// SECCode is a Standard Entry Class code. It selects which optional fields
// an EntryDetail or AddendaRecord carries and their lengths.
type SECCode string

const (
	SECArc SECCode = "ARC"
	SECPpd SECCode = "PPD"
	SECCtx SECCode = "CTX"
	SECPos SECCode = "POS"
	SECWeb SECCode = "WEB"
	SECBoc SECCode = "BOC"
	SECTel SECCode = "TEL"
	SECMte SECCode = "MTE"
	SECShr SECCode = "SHR"
	SECCcd SECCode = "CCD"
	SECCie SECCode = "CIE"
	SECPop SECCode = "POP"
	SECRck SECCode = "RCK"
)

var secCodes = map[SECCode]struct{}{
	SECArc: {}, SECPpd: {}, SECCtx: {}, SECPos: {}, SECWeb: {},
	SECBoc: {}, SECTel: {}, SECMte: {}, SECShr: {}, SECCcd: {},
	SECCie: {}, SECPop: {}, SECRck: {},
}

// ParseSECCode validates a raw standard entry class code.
func ParseSECCode(s string) (SECCode, error) {
	sec := SECCode(s)
	if _, ok := secCodes[sec]; !ok {
		return "", fmt.Errorf("std_ent_cls_code %q: %w", s, ErrInvalidCode)
	}
	return sec, nil
}

// ServiceClass indicates whether a batch is mixed, credit-only or
// debit-only.
type ServiceClass string

const (
	ServiceClassMixed   ServiceClass = "200"
	ServiceClassCredits ServiceClass = "220"
	ServiceClassDebits  ServiceClass = "225"
)

// ParseServiceClass validates a raw service class code.
func ParseServiceClass(s string) (ServiceClass, error) {
	switch ServiceClass(s) {
	case ServiceClassMixed, ServiceClassCredits, ServiceClassDebits:
		return ServiceClass(s), nil
	}
	return "", fmt.Errorf("serv_cls_code %q: %w", s, ErrInvalidCode)
}

// checkDigitWeights is the NACHA routing-number weighting. Not a Luhn
// variant: the digit is the distance to the next multiple of ten.
var checkDigitWeights = [8]int{3, 7, 1, 3, 7, 1, 3, 7}

// CheckDigit computes the validation digit for the first 8 digits of a
// receiving DFI identification.
func CheckDigit(recvDFIID string) (string, error) {
	if len(recvDFIID) < 8 {
		return "", fmt.Errorf("recv_dfi_id %q: routing prefix must be 8 digits: %w", recvDFIID, field.ErrNotNumeric)
	}
	sum := 0
	for i, weight := range checkDigitWeights {
		d := recvDFIID[i]
		if d < '0' || d > '9' {
			return "", fmt.Errorf("recv_dfi_id %q: %w", recvDFIID, field.ErrNotNumeric)
		}
		sum += int(d-'0') * weight
	}
	return strconv.Itoa((sum+9)/10*10 - sum), nil
}

// indNameLen returns the individual/company name width for a SEC code.
func indNameLen(sec SECCode) int {
	if sec == SECCie || sec == SECMte {
		return 15
	}
	return 22
}

// chkSerialLen returns the check serial number width for a SEC code.
func chkSerialLen(sec SECCode) int {
	if sec == SECPop {
		return 9
	}
	return 15
}

// FieldSpec names one positional field of a record layout. The specs below
// are the single source of truth for decode offsets: the parser slices rows
// by walking them, and the record tests assert they sum to RowWidth against
// the rendering side.
type FieldSpec struct {
	Name string
	Len  int
}

// FileHeaderLayout describes the file header row.
func FileHeaderLayout() []FieldSpec {
	return []FieldSpec{
		{"record_type_code", 1},
		{"priority_code", 2},
		{"immediate_dest", 10},
		{"immediate_org", 10},
		{"file_crt_date", 6},
		{"file_crt_time", 4},
		{"file_id_mod", 1},
		{"record_size", 3},
		{"blk_factor", 2},
		{"format_code", 1},
		{"im_dest_name", 23},
		{"im_orgn_name", 23},
		{"reference_code", 8},
	}
}

// FileControlLayout describes the file control row.
func FileControlLayout() []FieldSpec {
	return []FieldSpec{
		{"record_type_code", 1},
		{"batch_count", 6},
		{"block_count", 6},
		{"entadd_count", 8},
		{"entry_hash", 10},
		{"debit_amount", 12},
		{"credit_amount", 12},
		{"reserved", 39},
	}
}

// BatchHeaderLayout describes the batch header row.
func BatchHeaderLayout() []FieldSpec {
	return []FieldSpec{
		{"record_type_code", 1},
		{"serv_cls_code", 3},
		{"company_name", 16},
		{"cmpy_dis_data", 20},
		{"company_id", 10},
		{"std_ent_cls_code", 3},
		{"entry_desc", 10},
		{"desc_date", 6},
		{"eff_ent_date", 6},
		{"settlement_date", 3},
		{"orig_stat_code", 1},
		{"orig_dfi_id", 8},
		{"batch_id", 7},
	}
}

// BatchControlLayout describes the batch control row. The trailing field is
// batch_id, matching the rendering side.
func BatchControlLayout() []FieldSpec {
	return []FieldSpec{
		{"record_type_code", 1},
		{"serv_cls_code", 3},
		{"entadd_count", 6},
		{"entry_hash", 10},
		{"debit_amount", 12},
		{"credit_amount", 12},
		{"company_id", 10},
		{"mesg_auth_code", 19},
		{"reserved", 6},
		{"orig_dfi_id", 8},
		{"batch_id", 7},
	}
}

// EntryDetailLayout describes the entry detail row for a SEC code, in the
// 8-digit recv_dfi_id form (separate check_digit column).
func EntryDetailLayout(sec SECCode) []FieldSpec {
	specs := []FieldSpec{
		{"record_type_code", 1},
		{"transaction_code", 2},
		{"recv_dfi_id", 8},
		{"check_digit", 1},
		{"dfi_acnt_num", 17},
		{"amount", 10},
	}
	switch sec {
	case SECArc, SECBoc, SECRck:
		specs = append(specs,
			FieldSpec{"chk_serial_num", chkSerialLen(sec)},
			FieldSpec{"ind_name", indNameLen(sec)},
			FieldSpec{"disc_data", 2})
	case SECCcd, SECPpd, SECTel:
		specs = append(specs,
			FieldSpec{"id_number", 15},
			FieldSpec{"ind_name", indNameLen(sec)},
			FieldSpec{"disc_data", 2})
	case SECCie, SECMte:
		specs = append(specs,
			FieldSpec{"ind_name", indNameLen(sec)},
			FieldSpec{"ind_id", 22},
			FieldSpec{"disc_data", 2})
	case SECCtx:
		specs = append(specs,
			FieldSpec{"id_number", 15},
			FieldSpec{"num_add_recs", 4},
			FieldSpec{"recv_cmpy_name", 16},
			FieldSpec{"reserved", 2},
			FieldSpec{"disc_data", 2})
	case SECPop:
		specs = append(specs,
			FieldSpec{"chk_serial_num", chkSerialLen(sec)},
			FieldSpec{"terminal_city", 4},
			FieldSpec{"terminal_state", 2},
			FieldSpec{"ind_name", indNameLen(sec)},
			FieldSpec{"disc_data", 2})
	case SECPos:
		specs = append(specs,
			FieldSpec{"id_number", 15},
			FieldSpec{"ind_name", indNameLen(sec)},
			FieldSpec{"card_tr_typ_code_pos", 2})
	case SECShr:
		specs = append(specs,
			FieldSpec{"card_exp_date", 4},
			FieldSpec{"doc_ref_num", 11},
			FieldSpec{"ind_card_acct_num", 22},
			FieldSpec{"card_tr_typ_code_shr", 2})
	case SECWeb:
		specs = append(specs,
			FieldSpec{"id_number", 15},
			FieldSpec{"ind_name", indNameLen(sec)},
			FieldSpec{"pmt_type_code", 2})
	}
	return append(specs,
		FieldSpec{"add_rec_ind", 1},
		FieldSpec{"trace_num", 15})
}

// AddendaLayout describes the addenda row for a SEC code.
func AddendaLayout(sec SECCode) []FieldSpec {
	specs := []FieldSpec{
		{"record_type_code", 1},
		{"addenda_type_code", 2},
	}
	switch sec {
	case SECMte:
		return append(specs,
			FieldSpec{"trans_desc", 7},
			FieldSpec{"net_id_code", 3},
			FieldSpec{"term_id_code", 6},
			FieldSpec{"trans_serial_code", 6},
			FieldSpec{"trans_date", 4},
			FieldSpec{"trans_time", 6},
			FieldSpec{"terminal_loc", 27},
			FieldSpec{"terminal_city", 15},
			FieldSpec{"terminal_state", 2},
			FieldSpec{"trace_num", 15})
	case SECPos, SECShr:
		return append(specs,
			FieldSpec{"ref_info_1", 7},
			FieldSpec{"ref_info_2", 3},
			FieldSpec{"term_id_code", 6},
			FieldSpec{"trans_serial_code", 6},
			FieldSpec{"trans_date", 4},
			FieldSpec{"auth_card_exp", 6},
			FieldSpec{"terminal_loc", 27},
			FieldSpec{"terminal_city", 15},
			FieldSpec{"terminal_state", 2},
			FieldSpec{"trace_num", 15})
	}
	return append(specs,
		FieldSpec{"pmt_rel_info", 80},
		FieldSpec{"add_seq_num", 4},
		FieldSpec{"ent_det_seq_num", 7})
}

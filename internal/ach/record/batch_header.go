package record

import (
	"fmt"
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// BatchHeaderParams carries the raw values for a batch header. Blank
// strings fall back to the field's blank default (zeros for numeric
// columns, spaces for alphanumeric ones).
type BatchHeaderParams struct {
	ServClsCode   string
	CompanyName   string
	CmpyDisData   string
	CompanyID     string
	StdEntClsCode string
	EntryDesc     string
	DescDate      string
	EffEntDate    string
	OrigStatCode  string
	OrigDFIID     string
	BatchID       int
}

// BatchHeader is the type-5 record opening a batch. The settlement date
// column is reserved by the standard and always renders as 3 blanks.
type BatchHeader struct {
	servClsCode   string
	companyName   string
	cmpyDisData   string
	companyID     string
	stdEntClsCode string
	entryDesc     string
	descDate      string
	effEntDate    string
	origStatCode  string
	origDFIID     string
	batchID       string
}

// NewBatchHeader builds and validates a batch header.
func NewBatchHeader(p BatchHeaderParams) (*BatchHeader, error) {
	h := &BatchHeader{
		companyName:  field.Spaces(16),
		cmpyDisData:  field.Spaces(20),
		companyID:    field.Spaces(10),
		entryDesc:    field.Spaces(10),
		descDate:     field.Spaces(6),
		effEntDate:   field.Zeros(6),
		origStatCode: field.Spaces(1),
		origDFIID:    field.Zeros(8),
	}

	if err := h.SetServClsCode(p.ServClsCode); err != nil {
		return nil, err
	}
	if err := h.SetStdEntClsCode(p.StdEntClsCode); err != nil {
		return nil, err
	}
	if err := h.SetBatchID(p.BatchID); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		value string
		set   func(string) error
	}{
		{p.CompanyName, h.SetCompanyName},
		{p.CmpyDisData, h.SetCmpyDisData},
		{p.CompanyID, h.SetCompanyID},
		{p.EntryDesc, h.SetEntryDesc},
		{p.DescDate, h.SetDescDate},
		{p.EffEntDate, h.SetEffEntDate},
		{p.OrigStatCode, h.SetOrigStatCode},
		{p.OrigDFIID, h.SetOrigDFIID},
	} {
		if f.value == "" {
			continue
		}
		if err := f.set(f.value); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// SetServClsCode validates the service class code against {200, 220, 225}.
func (h *BatchHeader) SetServClsCode(value string) error {
	cls, err := ParseServiceClass(value)
	if err != nil {
		return err
	}
	h.servClsCode = string(cls)
	return nil
}

// SetStdEntClsCode validates the standard entry class against the thirteen
// known SEC codes.
func (h *BatchHeader) SetStdEntClsCode(value string) error {
	sec, err := ParseSECCode(value)
	if err != nil {
		return err
	}
	h.stdEntClsCode = string(sec)
	return nil
}

func (h *BatchHeader) SetCompanyName(value string) error {
	v, err := field.AlphaNumeric(value, 16)
	if err != nil {
		return fmt.Errorf("company_name %q: %w", value, err)
	}
	h.companyName = v
	return nil
}

func (h *BatchHeader) SetCmpyDisData(value string) error {
	v, err := field.AlphaNumeric(value, 20)
	if err != nil {
		return fmt.Errorf("cmpy_dis_data %q: %w", value, err)
	}
	h.cmpyDisData = v
	return nil
}

func (h *BatchHeader) SetCompanyID(value string) error {
	v, err := field.AlphaNumeric(value, 10)
	if err != nil {
		return fmt.Errorf("company_id %q: %w", value, err)
	}
	h.companyID = v
	return nil
}

func (h *BatchHeader) SetEntryDesc(value string) error {
	v, err := field.AlphaNumeric(value, 10)
	if err != nil {
		return fmt.Errorf("entry_desc %q: %w", value, err)
	}
	h.entryDesc = v
	return nil
}

func (h *BatchHeader) SetDescDate(value string) error {
	v, err := field.AlphaNumeric(value, 6)
	if err != nil {
		return fmt.Errorf("desc_date %q: %w", value, err)
	}
	h.descDate = v
	return nil
}

func (h *BatchHeader) SetEffEntDate(value string) error {
	v, err := field.Numeric(value, 6)
	if err != nil {
		return fmt.Errorf("eff_ent_date %q: %w", value, err)
	}
	h.effEntDate = v
	return nil
}

func (h *BatchHeader) SetOrigStatCode(value string) error {
	v, err := field.AlphaNumeric(value, 1)
	if err != nil {
		return fmt.Errorf("orig_stat_code %q: %w", value, err)
	}
	h.origStatCode = v
	return nil
}

func (h *BatchHeader) SetOrigDFIID(value string) error {
	v, err := field.Numeric(value, 8)
	if err != nil {
		return fmt.Errorf("orig_dfi_id %q: %w", value, err)
	}
	h.origDFIID = v
	return nil
}

func (h *BatchHeader) SetBatchID(n int) error {
	v, err := field.Numeric(strconv.Itoa(n), 7)
	if err != nil {
		return fmt.Errorf("batch_id %d: %w", n, err)
	}
	h.batchID = v
	return nil
}

// Set assigns a field by its layout name. The settlement date is reserved
// and not assignable.
func (h *BatchHeader) Set(name, value string) error {
	switch name {
	case "serv_cls_code":
		return h.SetServClsCode(value)
	case "std_ent_cls_code":
		return h.SetStdEntClsCode(value)
	case "company_name":
		return h.SetCompanyName(value)
	case "cmpy_dis_data":
		return h.SetCmpyDisData(value)
	case "company_id":
		return h.SetCompanyID(value)
	case "entry_desc":
		return h.SetEntryDesc(value)
	case "desc_date":
		return h.SetDescDate(value)
	case "eff_ent_date":
		return h.SetEffEntDate(value)
	case "orig_stat_code":
		return h.SetOrigStatCode(value)
	case "orig_dfi_id":
		return h.SetOrigDFIID(value)
	case "batch_id":
		v, err := field.Numeric(value, 7)
		if err != nil {
			return fmt.Errorf("batch_id %q: %w", value, err)
		}
		h.batchID = v
		return nil
	}
	return fmt.Errorf("batch header field %q: %w", name, ErrUnknownField)
}

// Accessors for the identifying fields mirrored into the batch control.

func (h *BatchHeader) ServClsCode() string { return h.servClsCode }
func (h *BatchHeader) CompanyID() string   { return h.companyID }
func (h *BatchHeader) OrigDFIID() string   { return h.origDFIID }
func (h *BatchHeader) BatchID() string     { return h.batchID }

// StdEntClsCode returns the batch's SEC code.
func (h *BatchHeader) StdEntClsCode() SECCode { return SECCode(h.stdEntClsCode) }

// Render returns the 94-character batch header row.
func (h *BatchHeader) Render() string {
	return string(TypeBatchHeader) +
		h.servClsCode +
		h.companyName +
		h.cmpyDisData +
		h.companyID +
		h.stdEntClsCode +
		h.entryDesc +
		h.descDate +
		h.effEntDate +
		field.Spaces(3) + // settlement_date, reserved
		h.origStatCode +
		h.origDFIID +
		h.batchID
}

func (h *BatchHeader) RowLength() int {
	return len(h.Render())
}

package record

import (
	"fmt"
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// BatchControl is the type-8 record closing a batch. It mirrors the batch
// header's identifying fields and carries the four totals derived from the
// batch's entries.
type BatchControl struct {
	servClsCode  string
	entaddCount  string
	entryHash    string
	debitAmount  string
	creditAmount string
	companyID    string
	mesgAuthCode string
	origDFIID    string
	batchID      string
}

// NewBatchControl builds a batch control with zeroed totals; the builder
// fills them in once the batch's entries are known. The message
// authentication code defaults to 19 blanks.
func NewBatchControl(servClsCode string) (*BatchControl, error) {
	c := &BatchControl{
		entaddCount:  field.Zeros(6),
		entryHash:    field.Zeros(10),
		debitAmount:  field.Zeros(12),
		creditAmount: field.Zeros(12),
		companyID:    field.Spaces(10),
		mesgAuthCode: field.Spaces(19),
		origDFIID:    field.Zeros(8),
		batchID:      field.Zeros(7),
	}
	cls, err := ParseServiceClass(servClsCode)
	if err != nil {
		return nil, err
	}
	c.servClsCode = string(cls)
	return c, nil
}

func (c *BatchControl) SetEntaddCount(n int) error {
	v, err := field.Numeric(strconv.Itoa(n), 6)
	if err != nil {
		return fmt.Errorf("entadd_count %d: %w", n, err)
	}
	c.entaddCount = v
	return nil
}

func (c *BatchControl) SetEntryHash(hash string) error {
	v, err := field.Numeric(hash, 10)
	if err != nil {
		return fmt.Errorf("entry_hash %q: %w", hash, err)
	}
	c.entryHash = v
	return nil
}

func (c *BatchControl) SetDebitAmount(cents int) error {
	v, err := field.Numeric(strconv.Itoa(cents), 12)
	if err != nil {
		return fmt.Errorf("debit_amount %d: %w", cents, err)
	}
	c.debitAmount = v
	return nil
}

func (c *BatchControl) SetCreditAmount(cents int) error {
	v, err := field.Numeric(strconv.Itoa(cents), 12)
	if err != nil {
		return fmt.Errorf("credit_amount %d: %w", cents, err)
	}
	c.creditAmount = v
	return nil
}

func (c *BatchControl) SetCompanyID(value string) error {
	v, err := field.AlphaNumeric(value, 10)
	if err != nil {
		return fmt.Errorf("company_id %q: %w", value, err)
	}
	c.companyID = v
	return nil
}

func (c *BatchControl) SetMesgAuthCode(value string) error {
	v, err := field.AlphaNumeric(value, 19)
	if err != nil {
		return fmt.Errorf("mesg_auth_code %q: %w", value, err)
	}
	c.mesgAuthCode = v
	return nil
}

func (c *BatchControl) SetOrigDFIID(value string) error {
	v, err := field.Numeric(value, 8)
	if err != nil {
		return fmt.Errorf("orig_dfi_id %q: %w", value, err)
	}
	c.origDFIID = v
	return nil
}

func (c *BatchControl) SetBatchID(value string) error {
	v, err := field.Numeric(value, 7)
	if err != nil {
		return fmt.Errorf("batch_id %q: %w", value, err)
	}
	c.batchID = v
	return nil
}

// Set assigns a field by its layout name from raw text.
func (c *BatchControl) Set(name, value string) error {
	switch name {
	case "serv_cls_code":
		cls, err := ParseServiceClass(value)
		if err != nil {
			return err
		}
		c.servClsCode = string(cls)
		return nil
	case "entadd_count", "entry_hash", "debit_amount", "credit_amount":
		lengths := map[string]int{
			"entadd_count":  6,
			"entry_hash":    10,
			"debit_amount":  12,
			"credit_amount": 12,
		}
		v, err := field.Numeric(value, lengths[name])
		if err != nil {
			return fmt.Errorf("%s %q: %w", name, value, err)
		}
		switch name {
		case "entadd_count":
			c.entaddCount = v
		case "entry_hash":
			c.entryHash = v
		case "debit_amount":
			c.debitAmount = v
		case "credit_amount":
			c.creditAmount = v
		}
		return nil
	case "company_id":
		return c.SetCompanyID(value)
	case "mesg_auth_code":
		return c.SetMesgAuthCode(value)
	case "orig_dfi_id":
		return c.SetOrigDFIID(value)
	case "batch_id":
		return c.SetBatchID(value)
	}
	return fmt.Errorf("batch control field %q: %w", name, ErrUnknownField)
}

// EntaddCount returns the entry + addenda count as an integer, used by the
// file-level totals.
func (c *BatchControl) EntaddCount() int {
	n, _ := strconv.Atoi(c.entaddCount)
	return n
}

// EntryHash returns the batch's entry hash as an integer.
func (c *BatchControl) EntryHash() int64 {
	n, _ := strconv.ParseInt(c.entryHash, 10, 64)
	return n
}

// DebitAmount returns the batch's debit total in cents.
func (c *BatchControl) DebitAmount() int {
	n, _ := strconv.Atoi(c.debitAmount)
	return n
}

// CreditAmount returns the batch's credit total in cents.
func (c *BatchControl) CreditAmount() int {
	n, _ := strconv.Atoi(c.creditAmount)
	return n
}

// Render returns the 94-character batch control row.
func (c *BatchControl) Render() string {
	return string(TypeBatchControl) +
		c.servClsCode +
		c.entaddCount +
		c.entryHash +
		c.debitAmount +
		c.creditAmount +
		c.companyID +
		c.mesgAuthCode +
		field.Spaces(6) + // reserved
		c.origDFIID +
		c.batchID
}

func (c *BatchControl) RowLength() int {
	return len(c.Render())
}

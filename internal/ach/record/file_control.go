package record

import (
	"fmt"
	"strconv"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// FileControl is the single type-9 record closing a NACHA file. All six
// totals are derived from batch data, never caller-supplied.
type FileControl struct {
	batchCount   string
	blockCount   string
	entaddCount  string
	entryHash    string
	debitAmount  string
	creditAmount string
	reserved     string
}

// NewFileControl builds and validates a file control record. The entry hash
// is passed as a string because the caller truncates it to its lowest ten
// digits before it reaches the record.
func NewFileControl(batchCount, blockCount, entaddCount int, entryHash string, debitAmount, creditAmount int) (*FileControl, error) {
	c := &FileControl{reserved: field.Spaces(39)}

	if err := c.SetBatchCount(batchCount); err != nil {
		return nil, err
	}
	if err := c.SetBlockCount(blockCount); err != nil {
		return nil, err
	}
	if err := c.SetEntaddCount(entaddCount); err != nil {
		return nil, err
	}
	if err := c.SetEntryHash(entryHash); err != nil {
		return nil, err
	}
	if err := c.SetDebitAmount(debitAmount); err != nil {
		return nil, err
	}
	if err := c.SetCreditAmount(creditAmount); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *FileControl) SetBatchCount(n int) error {
	v, err := field.Numeric(strconv.Itoa(n), 6)
	if err != nil {
		return fmt.Errorf("batch_count %d: %w", n, err)
	}
	c.batchCount = v
	return nil
}

func (c *FileControl) SetBlockCount(n int) error {
	v, err := field.Numeric(strconv.Itoa(n), 6)
	if err != nil {
		return fmt.Errorf("block_count %d: %w", n, err)
	}
	c.blockCount = v
	return nil
}

func (c *FileControl) SetEntaddCount(n int) error {
	v, err := field.Numeric(strconv.Itoa(n), 8)
	if err != nil {
		return fmt.Errorf("entadd_count %d: %w", n, err)
	}
	c.entaddCount = v
	return nil
}

func (c *FileControl) SetEntryHash(hash string) error {
	v, err := field.Numeric(hash, 10)
	if err != nil {
		return fmt.Errorf("entry_hash %q: %w", hash, err)
	}
	c.entryHash = v
	return nil
}

func (c *FileControl) SetDebitAmount(cents int) error {
	v, err := field.Numeric(strconv.Itoa(cents), 12)
	if err != nil {
		return fmt.Errorf("debit_amount %d: %w", cents, err)
	}
	c.debitAmount = v
	return nil
}

func (c *FileControl) SetCreditAmount(cents int) error {
	v, err := field.Numeric(strconv.Itoa(cents), 12)
	if err != nil {
		return fmt.Errorf("credit_amount %d: %w", cents, err)
	}
	c.creditAmount = v
	return nil
}

// Set assigns a field by its layout name from raw text.
func (c *FileControl) Set(name, value string) error {
	lengths := map[string]int{
		"batch_count":   6,
		"block_count":   6,
		"entadd_count":  8,
		"entry_hash":    10,
		"debit_amount":  12,
		"credit_amount": 12,
	}
	if length, ok := lengths[name]; ok {
		v, err := field.Numeric(value, length)
		if err != nil {
			return fmt.Errorf("%s %q: %w", name, value, err)
		}
		switch name {
		case "batch_count":
			c.batchCount = v
		case "block_count":
			c.blockCount = v
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
	}
	if name == "reserved" {
		v, err := field.AlphaNumeric(value, 39)
		if err != nil {
			return fmt.Errorf("reserved %q: %w", value, err)
		}
		c.reserved = v
		return nil
	}
	return fmt.Errorf("file control field %q: %w", name, ErrUnknownField)
}

// Render returns the 94-character file control row.
func (c *FileControl) Render() string {
	return string(TypeFileControl) +
		c.batchCount +
		c.blockCount +
		c.entaddCount +
		c.entryHash +
		c.debitAmount +
		c.creditAmount +
		c.reserved
}

func (c *FileControl) RowLength() int {
	return len(c.Render())
}

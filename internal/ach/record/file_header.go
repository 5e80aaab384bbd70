package record

import (
	"fmt"
	"time"

	"github.com/nacha-ach-builder/internal/ach/field"
)

// File header constants fixed by the format.
const (
	priorityCode = "01"
	recordSize   = "094"
	blkFactor    = "10"
	formatCode   = "1"
)

// FileHeader is the single type-1 record opening a NACHA file. The creation
// date and time are stamped at construction.
type FileHeader struct {
	immediateDest string
	immediateOrg  string
	fileCrtDate   string
	fileCrtTime   string
	fileIDMod     string
	imDestName    string
	imOrgnName    string
	referenceCode string
}

// NewFileHeader builds and validates a file header. An empty referenceCode
// renders as 8 blanks.
func NewFileHeader(immediateDest, immediateOrg, fileIDMod, imDestName, imOrgnName, referenceCode string) (*FileHeader, error) {
	now := time.Now()
	h := &FileHeader{
		fileCrtDate:   now.Format("060102"),
		fileCrtTime:   now.Format("1504"),
		referenceCode: field.Spaces(8),
	}

	h.SetImmediateDest(immediateDest)
	h.SetImmediateOrg(immediateOrg)
	if err := h.SetFileIDMod(fileIDMod); err != nil {
		return nil, err
	}
	if err := h.SetImDestName(imDestName); err != nil {
		return nil, err
	}
	if err := h.SetImOrgnName(imOrgnName); err != nil {
		return nil, err
	}
	if referenceCode != "" {
		if err := h.SetReferenceCode(referenceCode); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// SetImmediateDest right-justifies the receiving bank routing number into
// its 10-character column.
func (h *FileHeader) SetImmediateDest(value string) {
	h.immediateDest = field.RightJustify(value, 10)
}

// SetImmediateOrg right-justifies the originator identification into its
// 10-character column.
func (h *FileHeader) SetImmediateOrg(value string) {
	h.immediateOrg = field.RightJustify(value, 10)
}

// SetFileIDMod validates the file ID modifier, a single uppercase ASCII
// letter ('A' for the first file of the day, 'B' for the second and so on).
func (h *FileHeader) SetFileIDMod(value string) error {
	if len(value) != 1 || value[0] < 'A' || value[0] > 'Z' {
		return fmt.Errorf("file_id_mod %q: %w", value, ErrInvalidCode)
	}
	h.fileIDMod = value
	return nil
}

func (h *FileHeader) SetImDestName(value string) error {
	v, err := field.AlphaNumeric(value, 23)
	if err != nil {
		return fmt.Errorf("im_dest_name %q: %w", value, err)
	}
	h.imDestName = v
	return nil
}

func (h *FileHeader) SetImOrgnName(value string) error {
	v, err := field.AlphaNumeric(value, 23)
	if err != nil {
		return fmt.Errorf("im_orgn_name %q: %w", value, err)
	}
	h.imOrgnName = v
	return nil
}

func (h *FileHeader) SetReferenceCode(value string) error {
	v, err := field.AlphaNumeric(value, 8)
	if err != nil {
		return fmt.Errorf("reference_code %q: %w", value, err)
	}
	h.referenceCode = v
	return nil
}

// Set assigns a field by its layout name. Unknown names are a programming
// error, never silently accepted.
func (h *FileHeader) Set(name, value string) error {
	switch name {
	case "immediate_dest":
		h.SetImmediateDest(value)
		return nil
	case "immediate_org":
		h.SetImmediateOrg(value)
		return nil
	case "file_id_mod":
		return h.SetFileIDMod(value)
	case "im_dest_name":
		return h.SetImDestName(value)
	case "im_orgn_name":
		return h.SetImOrgnName(value)
	case "reference_code":
		return h.SetReferenceCode(value)
	}
	return fmt.Errorf("file header field %q: %w", name, ErrUnknownField)
}

// Render returns the 94-character file header row.
func (h *FileHeader) Render() string {
	return string(TypeFileHeader) +
		priorityCode +
		h.immediateDest +
		h.immediateOrg +
		h.fileCrtDate +
		h.fileCrtTime +
		h.fileIDMod +
		recordSize +
		blkFactor +
		formatCode +
		h.imDestName +
		h.imOrgnName +
		h.referenceCode
}

// RowLength reports the rendered width, always RowWidth for a valid record.
func (h *FileHeader) RowLength() int {
	return len(h.Render())
}

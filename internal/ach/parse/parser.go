// Package parse reconstructs the hierarchical ACH document from rendered
// NACHA text. Rows are decoded positionally against the record package's
// layout tables, so the decode side can never drift from the encoder.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nacha-ach-builder/internal/ach/record"
)

// ErrMalformedDocument reports structurally inconsistent input, such as a
// batch control row with no preceding batch header.
var ErrMalformedDocument = errors.New("structurally inconsistent ach document")

// Fields maps layout field names to their raw fixed-width values.
type Fields map[string]string

// Document mirrors the File → Batch → Entry → Addenda hierarchy with
// field-name→string leaves, directly JSON-encodable.
type Document struct {
	FileHeader  Fields  `json:"file_header"`
	FileControl Fields  `json:"file_control"`
	Batches     []Batch `json:"batches"`
}

// Batch is one parsed batch.
type Batch struct {
	Header  Fields  `json:"batch_header"`
	Control Fields  `json:"batch_control"`
	Entries []Entry `json:"entries"`
}

// Entry is one parsed entry detail with its addenda.
type Entry struct {
	Detail  Fields   `json:"entry_detail"`
	Addenda []Fields `json:"addenda"`
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Parse reconstructs the document from rendered text. Lines are classified
// by their leading record type code in a single pass; batches are
// non-nested, so a last-open-batch pointer pairs each control row with its
// header.
func Parse(text string) (*Document, error) {
	doc := &Document{Batches: []Batch{}}

	var sec record.SECCode
	sawHeader, sawControl := false, false
	openBatch := -1

	for _, line := range splitLines(text) {
		if line == "" {
			continue
		}
		switch line[0] {
		case record.TypeFileHeader:
			if !sawHeader {
				doc.FileHeader = decode(line, record.FileHeaderLayout())
				sawHeader = true
			}
		case record.TypeFileControl:
			if !sawControl {
				doc.FileControl = decode(line, record.FileControlLayout())
				sawControl = true
			}
		case record.TypeBatchHeader:
			header := decode(line, record.BatchHeaderLayout())
			parsed, err := record.ParseSECCode(header["std_ent_cls_code"])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			sec = parsed
			doc.Batches = append(doc.Batches, Batch{Header: header, Entries: []Entry{}})
			openBatch = len(doc.Batches) - 1
		case record.TypeBatchControl:
			if openBatch < 0 {
				return nil, fmt.Errorf("%w: batch control with no open batch", ErrMalformedDocument)
			}
			doc.Batches[openBatch].Control = decode(line, record.BatchControlLayout())
			openBatch = -1
		case record.TypeEntryDetail:
			if openBatch < 0 {
				return nil, fmt.Errorf("%w: entry detail outside a batch", ErrMalformedDocument)
			}
			batch := &doc.Batches[openBatch]
			batch.Entries = append(batch.Entries, Entry{
				Detail:  decode(line, record.EntryDetailLayout(sec)),
				Addenda: []Fields{},
			})
		case record.TypeAddenda:
			if openBatch < 0 || len(doc.Batches[openBatch].Entries) == 0 {
				return nil, fmt.Errorf("%w: addenda with no preceding entry", ErrMalformedDocument)
			}
			batch := &doc.Batches[openBatch]
			entry := &batch.Entries[len(batch.Entries)-1]
			entry.Addenda = append(entry.Addenda, decode(line, record.AddendaLayout(sec)))
		}
	}

	if !sawHeader {
		return nil, fmt.Errorf("%w: missing file header", ErrMalformedDocument)
	}
	if !sawControl {
		return nil, fmt.Errorf("%w: missing file control", ErrMalformedDocument)
	}
	if openBatch >= 0 {
		return nil, fmt.Errorf("%w: batch header with no matching control", ErrMalformedDocument)
	}
	return doc, nil
}

// LineGroup buckets the raw lines of one batch without decoding fields:
// the simpler inspection mode.
type LineGroup struct {
	Header  string   `json:"header"`
	Control string   `json:"control"`
	Lines   []string `json:"lines"`
}

// GroupLines splits rendered text into per-batch raw line groups, pairing
// each batch header with its control row. Lines outside any batch (file
// header, file control, filler) are dropped.
func GroupLines(text string) ([]LineGroup, error) {
	var groups []LineGroup
	open := -1

	for _, line := range splitLines(text) {
		if line == "" {
			continue
		}
		switch line[0] {
		case record.TypeBatchHeader:
			groups = append(groups, LineGroup{Header: line, Lines: []string{}})
			open = len(groups) - 1
		case record.TypeBatchControl:
			if open < 0 {
				return nil, fmt.Errorf("%w: batch control with no open batch", ErrMalformedDocument)
			}
			groups[open].Control = line
			open = -1
		case record.TypeEntryDetail, record.TypeAddenda:
			if open < 0 {
				return nil, fmt.Errorf("%w: entry row outside a batch", ErrMalformedDocument)
			}
			groups[open].Lines = append(groups[open].Lines, line)
		}
	}

	if open >= 0 {
		return nil, fmt.Errorf("%w: batch header with no matching control", ErrMalformedDocument)
	}
	return groups, nil
}

// decode slices a row against a layout table, walking the cumulative
// offsets. Short rows yield truncated trailing values rather than a panic;
// structural validation is the caller's concern.
func decode(line string, layout []record.FieldSpec) Fields {
	fields := make(Fields, len(layout))
	pos := 0
	for _, spec := range layout {
		end := pos + spec.Len
		if pos > len(line) {
			fields[spec.Name] = ""
			continue
		}
		if end > len(line) {
			end = len(line)
		}
		fields[spec.Name] = line[pos:end]
		pos += spec.Len
	}
	return fields
}

// splitLines accepts both line endings the renderer emits.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

package builder

import (
	"strings"
)

// fillerRow pads the file out to a whole number of 10-line blocks.
const fillerRow = "9999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999"

// RenderToString serializes the file to newline-joined 94-character rows.
// forceCRLF switches the line ending from "\n" to "\r\n". Filler rows of
// 94 '9' characters pad the file to a multiple of 10 lines, with no line
// ending after the last one.
func (f *File) RenderToString(forceCRLF bool) string {
	lineEnding := "\n"
	if forceCRLF {
		lineEnding = "\r\n"
	}

	var out strings.Builder
	out.WriteString(f.header.Render())
	out.WriteString(lineEnding)

	for _, batch := range f.batches {
		out.WriteString(batch.header.Render())
		out.WriteString(lineEnding)
		for _, entry := range batch.entries {
			out.WriteString(entry.detail.Render())
			out.WriteString(lineEnding)
			for _, addenda := range entry.addenda {
				out.WriteString(addenda.Render())
				out.WriteString(lineEnding)
			}
		}
		out.WriteString(batch.control.Render())
		out.WriteString(lineEnding)
	}

	out.WriteString(f.control.Render())
	out.WriteString(lineEnding)

	lines := f.lines()
	filler := blockCount(lines)*10 - lines
	for i := 0; i < filler; i++ {
		out.WriteString(fillerRow)
		if i < filler-1 {
			out.WriteString(lineEnding)
		}
	}

	return out.String()
}

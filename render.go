package bitwise

import (
	"fmt"
	"github.com/itchio/headway/counter"
	"io"
	"strings"
)

// Renderer writes a human readable rendering of a [View] to a writer. The zero value
// prints the plainest form: hex bytes and the reinterpretation table, no bit rows, no
// word section, no color.
type Renderer struct {
	// ShowBits adds a row under each byte line with every byte's bits, most significant
	// bit first.
	ShowBits bool

	// ShowWords adds a section with each word's single order-resolved value.
	ShowWords bool

	// Color wraps every byte in an ANSI 256-color sequence keyed to its significance
	// rank, so a byte keeps its color when a different order moves it.
	Color bool
}

// Palette of ANSI 256-color codes, indexed by significance rank.
var bytePalette = []int{81, 208, 118, 213, 227, 141, 75, 203}

// Render writes the view to w and returns the number of bytes written.
func (r *Renderer) Render(v *View, w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)

	if _, err := fmt.Fprintf(cw, "value: %s (%s)\n", v.ValueText(), v.ValueHex()); err != nil {
		return cw.Count(), fmt.Errorf("could not write value line: %w", err)
	}

	if _, err := fmt.Fprintf(cw, "width: %s  order: %s-endian  bytes: %d (minimum %d)\n\n", v.Width, v.Order, len(v.Bytes), v.MinBytes); err != nil {
		return cw.Count(), fmt.Errorf("could not write layout line: %w", err)
	}

	if err := r.writeBytes(cw, v); err != nil {
		return cw.Count(), err
	}

	if r.ShowWords {
		if err := r.writeWords(cw, v); err != nil {
			return cw.Count(), err
		}
	}

	if err := r.writeInterpretations(cw, v); err != nil {
		return cw.Count(), err
	}

	return cw.Count(), nil
}

func (r *Renderer) writeBytes(w io.Writer, v *View) error {
	if _, err := fmt.Fprintln(w, "offset  bytes"); err != nil {
		return fmt.Errorf("could not write byte header: %w", err)
	}

	// Bit rows are eight digits per byte, so widen the hex cells to keep the columns
	// lined up when they are shown
	cellWidth := 2
	if r.ShowBits {
		cellWidth = 8
	}

	for _, word := range v.Words {
		cells := make([]string, len(word.Bytes))
		for i, c := range word.Bytes {
			cells[i] = r.cell(c, cellWidth)
		}

		offset := word.Index * v.Width.Bytes()
		if _, err := fmt.Fprintf(w, "0x%02X    %s\n", offset, strings.Join(cells, " ")); err != nil {
			return fmt.Errorf("could not write byte row: %w", err)
		}

		if r.ShowBits {
			rows := make([]string, len(word.Bytes))
			for i, c := range word.Bytes {
				rows[i] = bitString(c.Bits)
			}

			if _, err := fmt.Fprintf(w, "        %s\n", strings.Join(rows, " ")); err != nil {
				return fmt.Errorf("could not write bit row: %w", err)
			}
		}
	}

	return nil
}

func (r *Renderer) writeWords(w io.Writer, v *View) error {
	if _, err := fmt.Fprintln(w, "\nwords:"); err != nil {
		return fmt.Errorf("could not write word header: %w", err)
	}

	for _, word := range v.Words {
		if _, err := fmt.Fprintf(w, "  %d: %s\n", word.Index, word.Hex()); err != nil {
			return fmt.Errorf("could not write word row: %w", err)
		}
	}

	return nil
}

func (r *Renderer) writeInterpretations(w io.Writer, v *View) error {
	if _, err := fmt.Fprintln(w, "\ntype      value"); err != nil {
		return fmt.Errorf("could not write interpretation header: %w", err)
	}

	for _, entry := range v.Interpretations {
		if _, err := fmt.Fprintf(w, "%-9s %s\n", entry.Type, entry); err != nil {
			return fmt.Errorf("could not write interpretation row: %w", err)
		}
	}

	return nil
}

// cell formats one byte, right aligned to width, colorized when enabled.
func (r *Renderer) cell(c ByteCell, width int) string {
	text := fmt.Sprintf("%*s", width, c.Hex())
	if !r.Color {
		return text
	}

	color := bytePalette[c.Significance%len(bytePalette)]
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, text)
}

func bitString(bits [8]uint8) string {
	var sb strings.Builder
	for _, bit := range bits {
		sb.WriteByte('0' + bit)
	}

	return sb.String()
}

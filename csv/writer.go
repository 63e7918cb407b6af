package csv

import (
	"bufio"
	"io"
	"strings"

	"github.com/midbel/cells/table"
)

const (
	comma = ','
	quote = '"'
	cr    = '\r'
	nl    = '\n'
	space = ' '
)

// Writer renders evaluated tables as CSV. Fields are quoted only when
// they have to be, unless ForceQuote is set.
type Writer struct {
	inner *bufio.Writer

	ForceQuote bool
	UseCRLF    bool
	Comma      byte
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: comma,
	}
	return &ws
}

// EncodeTable writes the bounding box of the table row major, one line
// per row. Each cell renders as its display value, computed numbers
// first, raw text otherwise; positions inside the box with no cell at
// all give empty fields. The empty table writes nothing.
func (w *Writer) EncodeTable(t *table.Table) error {
	if t.Len() == 0 {
		return w.inner.Flush()
	}
	var (
		rg   = t.Bounds()
		line = make([]string, 0, rg.Width())
	)
	for pos := range rg.Positions() {
		line = append(line, t.Display(pos))
		if len(line) == rg.Width() {
			if err := w.Write(line); err != nil {
				return err
			}
			line = line[:0]
		}
	}
	return w.inner.Flush()
}

func (w *Writer) Write(line []string) error {
	for i, str := range line {
		if i > 0 {
			if err := w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
		var err error
		if w.needQuotes(str) {
			err = w.writeQuoted(str)
		} else {
			_, err = w.inner.WriteString(str)
		}
		if err != nil {
			return err
		}
	}
	if w.UseCRLF {
		if err := w.inner.WriteByte(cr); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(nl)
}

func (w *Writer) Flush() error {
	return w.inner.Flush()
}

func (w *Writer) writeQuoted(str string) error {
	if err := w.inner.WriteByte(quote); err != nil {
		return err
	}
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == quote {
			if err := w.inner.WriteByte(c); err != nil {
				return err
			}
		}
		if err := w.inner.WriteByte(c); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(quote)
}

func (w *Writer) needQuotes(str string) bool {
	if w.ForceQuote {
		return true
	}
	if str == "" {
		return false
	}
	if str[0] == space {
		return true
	}
	for _, c := range []byte{w.Comma, quote, cr, nl} {
		if strings.IndexByte(str, c) >= 0 {
			return true
		}
	}
	return false
}

package runtime

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var displayColors = map[ValueType]*color.Color{
	INTEGER_VAL: color.New(color.FgCyan),
	FLOAT_VAL:   color.New(color.FgCyan),
	BOOLEAN_VAL: color.New(color.FgYellow),
	STRING_VAL:  color.New(color.FgGreen),
	ERROR_VAL:   color.New(color.FgRed),
	THREAD_VAL:  color.New(color.FgMagenta),
}

// Display writes v's rendering to w, colorized by kind when w is a terminal.
// The text itself is always exactly Inspect.
func Display(w io.Writer, v Value) error {
	if c, ok := displayColors[v.Type()]; ok && writerIsTerminal(w) {
		_, err := c.Fprint(w, v.Inspect())
		return err
	}
	_, err := io.WriteString(w, v.Inspect())
	return err
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

package textfile

import (
	"bufio"
	"io"

	"github.com/npillmayer/dsarray"
)

// WriteLines writes every element of lines to w, each terminated by "\n".
func WriteLines(w io.Writer, lines *dsarray.Array[string]) error {
	if lines == nil {
		return dsarray.ErrIllegalArguments
	}
	bw := bufio.NewWriter(w)
	for line := range lines.All() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

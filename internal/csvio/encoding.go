package csvio

import (
	"bufio"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeUTF8 wraps r with charset auto-detection. Exports from local POS
// systems occasionally arrive as Windows-1252/1251; everything else is
// assumed UTF-8.
func DecodeUTF8(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	switch cs {
	case "windows-1252", "cp1252", "iso-8859-1":
		return transform.NewReader(br, charmap.Windows1252.NewDecoder())
	case "windows-1251", "cp1251":
		return transform.NewReader(br, charmap.Windows1251.NewDecoder())
	default:
		return br
	}
}

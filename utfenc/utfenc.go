// Package utfenc encodes codepoint.Text in the five Unicode transformation
// formats written out as fixtures.
package utfenc

import (
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/utfgen/codepoint"
)

type Format struct {
	Name     string
	Filename string
	Encoding encoding.Encoding
}

// None of the formats write a byte order mark.
var (
	UTF8    = newFormat("utf8", unicode.UTF8)
	UTF16BE = newFormat("utf16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
	UTF16LE = newFormat("utf16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
	UTF32BE = newFormat("utf32be", utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM))
	UTF32LE = newFormat("utf32le", utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM))
)

// Formats holds every fixture format in output order.
var Formats = []Format{
	UTF8,
	UTF16BE,
	UTF16LE,
	UTF32BE,
	UTF32LE,
}

func newFormat(name string, enc encoding.Encoding) Format {
	return Format{
		Name:     name,
		Filename: name + ".txt",
		Encoding: enc,
	}
}

func (f Format) Encode(t codepoint.Text) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to encode %s", f.Name)

	return f.Encoding.NewEncoder().Bytes([]byte(t.String()))
}

// WriteFile creates or truncates path and writes t to it encoded as f.
func (f Format) WriteFile(path string, t codepoint.Text) (err error) {
	defer xdefer.Errorf(&err, "failed to write %s", path)

	fw, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := fw.Close()
		if err == nil {
			err = closeErr
		}
	}()

	w := transform.NewWriter(fw, f.Encoding.NewEncoder())
	_, err = io.WriteString(w, t.String())
	if err != nil {
		return err
	}
	return w.Close()
}

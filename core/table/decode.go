package table

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names accepted by DecodeReader.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16   = "utf-16"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingLatin1  = "latin-1"
	EncodingWin1252 = "windows-1252"
)

// Encodings lists the accepted encoding names, in help-text order.
var Encodings = []string{
	EncodingUTF8,
	EncodingUTF16,
	EncodingUTF16LE,
	EncodingUTF16BE,
	EncodingLatin1,
	EncodingWin1252,
}

// ValidEncoding reports whether name is an encoding DecodeReader accepts.
// The empty string counts: it means utf-8.
func ValidEncoding(name string) bool {
	if name == "" {
		return true
	}
	for _, e := range Encodings {
		if name == e {
			return true
		}
	}
	return false
}

// DecodeReader wraps r so that text in the named encoding comes out as UTF-8.
// The empty name means utf-8. In utf-8 mode a byte-order mark, including a
// UTF-16 one, overrides the declared encoding, so spreadsheet exports decode
// without needing a flag.
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding
	switch name {
	case "", EncodingUTF8:
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case EncodingUTF16:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case EncodingUTF16LE:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16BE:
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingLatin1:
		enc = charmap.ISO8859_1
	case EncodingWin1252:
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("table: unsupported encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

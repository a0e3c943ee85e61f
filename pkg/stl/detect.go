package stl

import (
	"encoding/binary"
	"regexp"
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Binary layout
const (
	headerSize     = 80
	countSize      = 4
	dataOffset     = headerSize + countSize
	recordSize     = 50
	maxBinaryCount = 1_000_000_000

	// asciiSampleSize is how much of the buffer is inspected for ASCII keywords
	asciiSampleSize = 1024
)

var asciiKeywords = regexp.MustCompile(`facet\s+normal|vertex`)

// Detect decides whether data holds an ASCII or binary STL.
//
// A buffer whose length is exactly 84 + 50n for the count n stored at offset
// 80 is binary, whatever its header says; many binary exporters write
// "solid ..." into the header. Otherwise the leading text must start with
// "solid " and mention facets or vertices to count as ASCII. Anything else is
// treated as binary.
func Detect(data []byte) Format {
	if n, ok := readCount(data); ok && n > 0 && n < maxBinaryCount && binarySize(n) == int64(len(data)) {
		return FormatBinary
	}

	sample := data
	if len(sample) > asciiSampleSize {
		sample = sample[:asciiSampleSize]
	}
	text := strings.TrimLeftFunc(decodeText(sample), unicode.IsSpace)
	if strings.HasPrefix(text, "solid ") && asciiKeywords.MatchString(text) {
		return FormatASCII
	}

	return FormatBinary
}

// readCount returns the triangle count stored at offset 80
func readCount(data []byte) (uint32, bool) {
	if len(data) < dataOffset {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[headerSize:dataOffset]), true
}

// binarySize returns the exact byte length of a binary STL with n triangles
func binarySize(n uint32) int64 {
	return dataOffset + recordSize*int64(n)
}

// decodeText converts bytes to a string, dropping a leading byte order mark and
// replacing invalid UTF-8 sequences with U+FFFD instead of failing.
func decodeText(data []byte) string {
	out, _, err := transform.Bytes(textunicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

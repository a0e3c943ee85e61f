package stl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectASCII(t *testing.T) {
	assert.Equal(t, FormatASCII, Detect([]byte(asciiTriangle)))
}

func TestDetectASCIILeadingWhitespace(t *testing.T) {
	assert.Equal(t, FormatASCII, Detect([]byte("\r\n\t  "+asciiTriangle)))
}

func TestDetectASCIIWithBOM(t *testing.T) {
	assert.Equal(t, FormatASCII, Detect([]byte("\xef\xbb\xbf"+asciiTriangle)))
	assert.Equal(t, FormatASCII, Detect([]byte("\xef\xbb\xbf\r\n  "+asciiTriangle)))
}

func TestDetectASCIIFlexibleWhitespace(t *testing.T) {
	data := "solid x\nfacet   \t normal 0 0 1\n"
	assert.Equal(t, FormatASCII, Detect([]byte(data)))
}

func TestDetectBinary(t *testing.T) {
	data := createTestBinary("binary", [][9]float32{{0, 0, 0, 1, 0, 0, 0, 1, 0}})
	assert.Equal(t, FormatBinary, Detect(data))
}

func TestDetectBinaryWithSolidHeader(t *testing.T) {
	// Header spells an ASCII signature, but the exact size match wins.
	header := "solid abc facet normal vertex"
	data := createTestBinary(header, [][9]float32{
		{0, 0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 1},
	})
	assert.Equal(t, FormatBinary, Detect(data))
}

func TestDetectSolidWithoutKeywordsFallsBackToBinary(t *testing.T) {
	assert.Equal(t, FormatBinary, Detect([]byte("solid name but nothing else")))
}

func TestDetectKeywordsMustBeCaseSensitive(t *testing.T) {
	assert.Equal(t, FormatBinary, Detect([]byte("solid x\nFACET NORMAL 0 0 1\nVERTEX 1 2 3\n")))
}

func TestDetectRequiresSolidPrefix(t *testing.T) {
	assert.Equal(t, FormatBinary, Detect([]byte("facet normal 0 0 1\nvertex 0 0 0\n")))
	assert.Equal(t, FormatBinary, Detect([]byte("solidvertex 0 0 0\n")))
}

func TestDetectOnlySamplesLeadingBytes(t *testing.T) {
	data := "solid " + strings.Repeat("x", 2048) + "\nvertex 0 0 0\n"
	assert.Equal(t, FormatBinary, Detect([]byte(data)))
}

func TestDetectToleratesInvalidUTF8(t *testing.T) {
	data := append([]byte("solid \xff\xfe broken\n"), []byte("facet normal 0 0 1\n")...)
	assert.Equal(t, FormatASCII, Detect(data))
}

func TestDetectZeroCountIsNotAuthoritative(t *testing.T) {
	// n=0 with an 84-byte buffer does not satisfy 0 < n.
	data := createTestBinary("solid x vertex", nil)
	assert.Len(t, data, 84)
	assert.Equal(t, FormatASCII, Detect(data))
}

func TestDetectEmpty(t *testing.T) {
	assert.Equal(t, FormatBinary, Detect(nil))
}

package utfenc_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/xrand"

	"oss.terrastruct.com/utfgen/codepoint"
	"oss.terrastruct.com/utfgen/utfenc"
)

var sample = codepoint.Text{'A', 0xE9, 0x20AC, 0x1F600}

func TestEncode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		format utfenc.Format
		exp    []byte
	}{
		{
			format: utfenc.UTF8,
			exp: []byte{
				0x41,
				0xC3, 0xA9,
				0xE2, 0x82, 0xAC,
				0xF0, 0x9F, 0x98, 0x80,
			},
		},
		{
			format: utfenc.UTF16BE,
			exp: []byte{
				0x00, 0x41,
				0x00, 0xE9,
				0x20, 0xAC,
				0xD8, 0x3D, 0xDE, 0x00,
			},
		},
		{
			format: utfenc.UTF16LE,
			exp: []byte{
				0x41, 0x00,
				0xE9, 0x00,
				0xAC, 0x20,
				0x3D, 0xD8, 0x00, 0xDE,
			},
		},
		{
			format: utfenc.UTF32BE,
			exp: []byte{
				0x00, 0x00, 0x00, 0x41,
				0x00, 0x00, 0x00, 0xE9,
				0x00, 0x00, 0x20, 0xAC,
				0x00, 0x01, 0xF6, 0x00,
			},
		},
		{
			format: utfenc.UTF32LE,
			exp: []byte{
				0x41, 0x00, 0x00, 0x00,
				0xE9, 0x00, 0x00, 0x00,
				0xAC, 0x20, 0x00, 0x00,
				0x00, 0xF6, 0x01, 0x00,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.format.Name, func(t *testing.T) {
			t.Parallel()

			b, err := tc.format.Encode(sample)
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, b)

			b, err = tc.format.Encode(codepoint.Text{})
			assert.NoError(t, err)
			assert.Empty(t, b)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []codepoint.Text{
		{},
		sample,
		{0, 0xD7FF, 0xE000, 0xFFFF, 0x10000, codepoint.Max},
		codepoint.NewSeededGenerator(0).Text(5000),
		codepoint.Text(xrand.String(rand.Intn(99), nil)),
	}

	for _, f := range utfenc.Formats {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			t.Parallel()

			for _, text := range texts {
				b, err := f.Encode(text)
				assert.NoError(t, err)

				dec, err := f.Encoding.NewDecoder().Bytes(b)
				assert.NoError(t, err)
				assert.Equal(t, text.String(), string(dec))
			}
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()

	var names []string
	for _, f := range utfenc.Formats {
		assert.Equal(t, f.Name+".txt", f.Filename)
		names = append(names, f.Filename)
	}
	assert.Equal(t, []string{"utf8.txt", "utf16be.txt", "utf16le.txt", "utf32be.txt", "utf32le.txt"}, names)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, f := range utfenc.Formats {
		fp := filepath.Join(dir, f.Filename)

		// Stale content longer than the new output must not survive.
		err := os.WriteFile(fp, make([]byte, 1024), 0644)
		assert.NoError(t, err)

		err = f.WriteFile(fp, sample)
		assert.NoError(t, err)

		got, err := os.ReadFile(fp)
		assert.NoError(t, err)
		exp, err := f.Encode(sample)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	}
}

func TestWriteFileError(t *testing.T) {
	t.Parallel()

	fp := filepath.Join(t.TempDir(), "missing", utfenc.UTF16LE.Filename)
	err := utfenc.UTF16LE.WriteFile(fp, sample)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), fp)
}

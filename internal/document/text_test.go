package document

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Plain(t *testing.T) {
	got, err := ExtractText("cv.TXT", []byte("Jane   Smith\r\n\r\n\r\n\r\nSKILLS\t\tGo, SQL  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\n\nSKILLS Go, SQL", got)
}

func TestExtractText_Unsupported(t *testing.T) {
	_, err := ExtractText("cv.odt", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractText("noext", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_InvalidUTF8(t *testing.T) {
	_, err := ExtractText("cv.md", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestExtractText_Docx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml": `<w:document><w:body>` +
			`<w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>R&amp;D Engineer</w:t></w:r></w:p>` +
			`<w:p></w:p>` +
			`<w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>Go,</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p>` +
			`</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<Relationships></Relationships>`,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	got, err := ExtractText("cv.docx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nR&D Engineer\n\nSKILLS\nGo, SQL", got)
}

func TestExtractText_BrokenBinary(t *testing.T) {
	_, err := ExtractText("cv.docx", []byte("not a zip"))
	assert.Error(t, err)

	_, err = ExtractText("cv.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

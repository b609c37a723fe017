// Package document turns uploaded résumé files into plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Supported lists the accepted file extensions.
var Supported = []string{".pdf", ".docx", ".txt", ".md"}

// ExtractText picks a reader by file extension.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s is not valid UTF-8", filename)
		}
		return normalizeWhitespace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return normalizeWhitespace(b.String()), nil
}

var (
	xmlTagRe      = regexp.MustCompile(`<[^>]+>`)
	horizontalWS  = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	excessNewline = regexp.MustCompile(`\n{3,}`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return normalizeWhitespace(html.UnescapeString(content)), nil
}

// normalizeWhitespace collapses horizontal whitespace and trims each line,
// keeping single blank lines since they delimit résumé sections.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(horizontalWS.ReplaceAllString(l, " "))
	}
	s = strings.Join(lines, "\n")
	s = excessNewline.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

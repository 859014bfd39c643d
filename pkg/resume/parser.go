// Package resume extracts plain text from uploaded resume files.
package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var (
	reTags    = regexp.MustCompile(`<[^>]+>`)
	reHSpace  = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewline = regexp.MustCompile(`\n+`)
)

// ExtractText extracts plain text from a resume file.
// Supported formats: .pdf and .docx.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDocx(data)
	default:
		return "", errors.New("unsupported file format: only pdf and docx are allowed")
	}
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return cleanWhitespace(buf.String()), nil
}

func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph ends become newlines, tabs stay tabs, everything else that
	// looks like markup goes away.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return cleanWhitespace(reTags.ReplaceAllString(xml, " ")), nil
}

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reHSpace.ReplaceAllString(s, " ")
	s = reNewline.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

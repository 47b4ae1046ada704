// Package extract turns uploaded documents and web pages into bounded plain
// text for prompt composition.
//
// Extraction never fails a request: library errors and unsupported inputs
// are reported through Result.Warning and the caller proceeds with empty
// text.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentKind identifies the declared type of an uploaded document.
type DocumentKind string

const (
	// KindPDF is a PDF document
	KindPDF DocumentKind = "pdf"
	// KindDOCX is a Word document
	KindDOCX DocumentKind = "docx"
	// KindText is a plain text document
	KindText DocumentKind = "txt"
	// KindUnknown is an unrecognized document type
	KindUnknown DocumentKind = "unknown"
)

// Result is the outcome of an extraction. Warning is set when extraction
// produced nothing useful; it distinguishes "found nothing" from "errored".
type Result struct {
	Text    string
	Warning string
}

// Kind determines the document kind from a filename by case-insensitive
// extension match.
func Kind(filename string) DocumentKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	case ".txt":
		return KindText
	default:
		return KindUnknown
	}
}

// Document extracts plain text from an uploaded document. The kind is
// determined from the filename.
func Document(filename string, data []byte) Result {
	switch Kind(filename) {
	case KindPDF:
		text, err := pdfText(data)
		if err != nil {
			return Result{Warning: fmt.Sprintf("pdf extraction failed: %v", err)}
		}
		return Result{Text: text}
	case KindDOCX:
		text, err := docxText(data)
		if err != nil {
			return Result{Warning: fmt.Sprintf("docx extraction failed: %v", err)}
		}
		return Result{Text: text}
	case KindText:
		return Result{Text: string(data)}
	default:
		return Result{Warning: fmt.Sprintf("unsupported file type: %s", filename)}
	}
}

// pdfText concatenates the extracted text of every page, in page order.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// docxText extracts the full plain-text body of a Word document.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// Truncate returns at most limit characters of s. It is a hard slice with no
// regard for sentence or token boundaries.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

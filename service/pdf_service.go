package service

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

var (
	spaceRunPattern   = regexp.MustCompile(`[ \t]+`)
	newlineRunPattern = regexp.MustCompile(`\n{3,}`)
)

// PDFService turns raw PDF bytes into a NormalizedDocument: cleaned text plus
// the offset at which each page starts.
type PDFService struct {
	minTextLength int
}

func NewPDFService(minTextLength int) *PDFService {
	return &PDFService{minTextLength: minTextLength}
}

// Extract reads every page of the PDF, cleans the text and records page
// boundaries. It fails with *types.ExtractionError when the document is
// unreadable or yields too little text to answer from.
func (s *PDFService) Extract(data []byte) (*types.NormalizedDocument, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &types.ExtractionError{Err: fmt.Errorf("open pdf: %w", err)}
	}

	var sb strings.Builder
	var boundaries []types.PageBoundary

	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
			continue // Skip failed pages instead of returning error
		}
		pageText = cleanText(pageText)
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		boundaries = append(boundaries, types.PageBoundary{Page: pageNum, Offset: sb.Len()})
		sb.WriteString(pageText)
	}

	text := sb.String()
	if text == "" {
		return nil, &types.ExtractionError{Err: errors.New("no text could be extracted from any page")}
	}
	if len(text) < s.minTextLength {
		return nil, &types.ExtractionError{Err: fmt.Errorf("only %d characters extracted, document not usable", len(text))}
	}

	log.Printf("Extracted %d characters from %d pages", len(text), len(boundaries))
	return &types.NormalizedDocument{Text: text, Pages: boundaries}, nil
}

// cleanText normalizes extracted page text while preserving line structure.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = newlineRunPattern.ReplaceAllString(text, "\n\n")

	// Normalize curly quotes
	replacer := strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
	text = replacer.Replace(text)

	return strings.TrimSpace(text)
}

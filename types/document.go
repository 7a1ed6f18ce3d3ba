package types

// NormalizedDocument holds the cleaned full text of one downloaded document
// together with the offset at which each page begins. It is produced once per
// request by the extractor and never mutated afterwards.
type NormalizedDocument struct {
	Text  string
	Pages []PageBoundary
}

// PageBoundary marks where a page starts inside NormalizedDocument.Text.
type PageBoundary struct {
	Page   int // 1-based page number
	Offset int // byte offset of the first character of the page
}

// PageAt returns the page number containing the given text offset.
func (d *NormalizedDocument) PageAt(offset int) int {
	page := 1
	for _, b := range d.Pages {
		if b.Offset > offset {
			break
		}
		page = b.Page
	}
	return page
}

// TotalPages returns the number of the last page, or 1 when no page
// boundaries were recorded.
func (d *NormalizedDocument) TotalPages() int {
	if len(d.Pages) == 0 {
		return 1
	}
	return d.Pages[len(d.Pages)-1].Page
}

// Chunk is a bounded slice of document text sized to fit a single LLM call.
// Chunks are ordered by Index in document order and may overlap their
// neighbors by a configured number of trailing characters.
type Chunk struct {
	Index     int
	Content   string
	StartPage int
	EndPage   int
}

// DocumentServiceConfig contains configuration options for document processing
type DocumentServiceConfig struct {
	MaxChunkSize  int // Maximum size for text chunks
	OverlapSize   int // Size of overlap between chunks
	MinTextLength int // Minimum extracted text length considered usable
}

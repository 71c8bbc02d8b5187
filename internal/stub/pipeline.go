package stub

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"rfpdocs/internal/domain"
)

// failPrefix marks uploads that should end FAILED, so error paths can be
// exercised against the stub: name the file "fail-something.pdf".
const failPrefix = "fail-"

// pipeline advances a document UPLOADED -> PROCESSING -> COMPLETED|FAILED
// with a fixed delay per hop and synthesizes an extraction on success. A
// non-positive delay disables automatic advancement; documents then stay
// UPLOADED until Advance is called, which tests use to step the lifecycle
// deterministically.
type pipeline struct {
	store *Store
	delay time.Duration
}

func (p *pipeline) schedule(id uuid.UUID) {
	if p.delay <= 0 {
		return
	}
	go func() {
		time.Sleep(p.delay)
		p.advance(id)
		time.Sleep(p.delay)
		p.advance(id)
	}()
}

// advance moves a document one lifecycle step forward.
func (p *pipeline) advance(id uuid.UUID) {
	doc, ok := p.store.getAny(id)
	if !ok {
		return
	}
	switch doc.Status {
	case domain.DocumentStatusUploaded:
		p.store.SetStatus(id, domain.DocumentStatusProcessing, "")
	case domain.DocumentStatusProcessing:
		p.finish(doc)
	}
}

func (p *pipeline) finish(doc *domain.Document) {
	if strings.HasPrefix(strings.ToLower(doc.OriginalFilename), failPrefix) {
		p.store.SetStatus(doc.ID, domain.DocumentStatusFailed, "Simulated extraction failure")
		p.store.SetExtraction(doc.ID, &domain.Extraction{
			ID:           uuid.New(),
			DocumentID:   doc.ID,
			Status:       domain.ExtractionStatusFailed,
			ErrorMessage: "Simulated extraction failure",
			ExtractedAt:  timePtr(time.Now().UTC()),
		})
		return
	}
	p.store.SetExtraction(doc.ID, synthesizeExtraction(doc))
	p.store.SetStatus(doc.ID, domain.DocumentStatusCompleted, "")
}

// Advance steps a document one lifecycle stage forward, regardless of the
// configured delay. Intended for tests and manual driving of the stub.
func (s *Server) Advance(id uuid.UUID) {
	s.pipeline.advance(id)
}

// Complete drives a document all the way to its terminal state.
func (s *Server) Complete(id uuid.UUID) {
	s.pipeline.advance(id)
	s.pipeline.advance(id)
}

// synthesizeExtraction fabricates a plausible extraction result for a
// completed document.
func synthesizeExtraction(doc *domain.Document) *domain.Extraction {
	text := "Extracted text from " + doc.OriginalFilename
	tables := []domain.ExtractedTable{
		{
			Name: "Requirements",
			Rows: [][]string{
				{"Item", "Description", "Priority"},
				{"R1", "Vendor must provide 24/7 support", "High"},
				{"R2", "Data residency within the EU", "Medium"},
			},
		},
	}
	keyValues := []domain.KeyValuePair{
		{Key: "Title", Value: strings.TrimSuffix(doc.OriginalFilename, filenameExt(doc.OriginalFilename))},
		{Key: "Budget", Value: "$1M"},
		{Key: "Deadline", Value: "2026-12-31"},
	}
	tablesJSON, _ := json.Marshal(tables)
	keyValuesJSON, _ := json.Marshal(keyValues)

	charCount := len(text)
	tableCount := len(tables)
	ex := &domain.Extraction{
		ID:             uuid.New(),
		DocumentID:     doc.ID,
		ExtractedText:  text,
		TablesJSON:     string(tablesJSON),
		KeyValuesJSON:  string(keyValuesJSON),
		Status:         domain.ExtractionStatusSuccess,
		CharacterCount: &charCount,
		TableCount:     &tableCount,
		ExtractedAt:    timePtr(time.Now().UTC()),
	}
	switch doc.ContentType {
	case domain.ContentTypeXLSX:
		sheets := 1
		ex.SheetCount = &sheets
	default:
		// A crude page estimate keeps the counter advisory but non-trivial.
		pages := int(doc.FileSize/2000) + 1
		ex.PageCount = &pages
	}
	return ex
}

func filenameExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func timePtr(t time.Time) *time.Time {
	return &t
}

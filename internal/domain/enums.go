package domain

// DocumentStatus represents the backend-driven lifecycle of a document.
// The client never transitions a status itself; it only reflects what the
// backend reports on each fetch.
type DocumentStatus string

const (
	DocumentStatusUploaded   DocumentStatus = "UPLOADED"
	DocumentStatusProcessing DocumentStatus = "PROCESSING"
	DocumentStatusCompleted  DocumentStatus = "COMPLETED"
	DocumentStatusFailed     DocumentStatus = "FAILED"
)

// DocumentStatuses lists every known document status.
var DocumentStatuses = []DocumentStatus{
	DocumentStatusUploaded,
	DocumentStatusProcessing,
	DocumentStatusCompleted,
	DocumentStatusFailed,
}

// Valid reports whether s is a known document status.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusUploaded, DocumentStatusProcessing,
		DocumentStatusCompleted, DocumentStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether the backend will never move the document out of s.
func (s DocumentStatus) Terminal() bool {
	return s == DocumentStatusCompleted || s == DocumentStatusFailed
}

// ExtractionStatus represents the outcome of the extraction pipeline. It is
// an independent vocabulary from DocumentStatus.
type ExtractionStatus string

const (
	ExtractionStatusPending ExtractionStatus = "PENDING"
	ExtractionStatusSuccess ExtractionStatus = "SUCCESS"
	ExtractionStatusFailed  ExtractionStatus = "FAILED"
)

// StatusDisplay holds the display attributes for a document status.
type StatusDisplay struct {
	Label string
	Color string
}

// statusDisplays maps every DocumentStatus to its display attributes.
var statusDisplays = map[DocumentStatus]StatusDisplay{
	DocumentStatusUploaded:   {Label: "Uploaded", Color: "#3b82f6"},
	DocumentStatusProcessing: {Label: "Processing", Color: "#f59e0b"},
	DocumentStatusCompleted:  {Label: "Completed", Color: "#10b981"},
	DocumentStatusFailed:     {Label: "Failed", Color: "#ef4444"},
}

// unknownStatusDisplay is used for statuses this client does not know about.
var unknownStatusDisplay = StatusDisplay{Label: "Unknown", Color: "#64748b"}

// Display returns the display attributes for s, falling back to a neutral
// gray so a newer backend vocabulary cannot break rendering.
func (s DocumentStatus) Display() StatusDisplay {
	if d, ok := statusDisplays[s]; ok {
		return d
	}
	return unknownStatusDisplay
}

// MaxUploadBytes is the client-side upload size limit (50 MiB).
const MaxUploadBytes int64 = 52428800

// Allowed MIME content types for upload.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOC  = "application/msword"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeTXT  = "text/plain"
)

// AllowedContentTypes is the upload allow-list, keyed by MIME type.
var AllowedContentTypes = map[string]bool{
	ContentTypePDF:  true,
	ContentTypeDOC:  true,
	ContentTypeDOCX: true,
	ContentTypeXLSX: true,
	ContentTypeTXT:  true,
}

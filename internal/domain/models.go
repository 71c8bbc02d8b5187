package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a single uploaded file tracked through the extraction
// lifecycle. All fields are backend-owned; the client treats them as
// read-only snapshots.
type Document struct {
	ID               uuid.UUID      `json:"id"`
	Filename         string         `json:"filename"`
	OriginalFilename string         `json:"originalFilename"`
	ContentType      string         `json:"contentType"`
	FileSize         int64          `json:"fileSize"`
	StoragePath      string         `json:"storagePath"`
	Status           DocumentStatus `json:"status"`
	ErrorMessage     string         `json:"errorMessage,omitempty"`
	UploadedAt       time.Time      `json:"uploadedAt"`
	ProcessedAt      *time.Time     `json:"processedAt,omitempty"`
}

// Extraction is the structured result of parsing a document. TablesJSON and
// KeyValuesJSON carry serialized collections; decode them with ParseTables
// and ParseKeyValues rather than ad hoc. The summary counters are advisory
// and must never be recomputed from the payloads.
type Extraction struct {
	ID             uuid.UUID        `json:"id"`
	DocumentID     uuid.UUID        `json:"documentId"`
	ExtractedText  string           `json:"extractedText,omitempty"`
	TablesJSON     string           `json:"tablesJson,omitempty"`
	KeyValuesJSON  string           `json:"keyValuesJson,omitempty"`
	Status         ExtractionStatus `json:"status"`
	ErrorMessage   string           `json:"errorMessage,omitempty"`
	PageCount      *int             `json:"pageCount,omitempty"`
	SheetCount     *int             `json:"sheetCount,omitempty"`
	CharacterCount *int             `json:"characterCount,omitempty"`
	TableCount     *int             `json:"tableCount,omitempty"`
	ExtractedAt    *time.Time       `json:"extractedAt,omitempty"`
}

// ExtractedTable is one table recovered from a document. Rows may be ragged;
// consumers render only the cells that are present.
type ExtractedTable struct {
	Name string     `json:"name"`
	Rows [][]string `json:"rows"`
}

// KeyValuePair is one extracted key/value field. Sequence order is display
// order as provided by the backend.
type KeyValuePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TenantInfo identifies the caller's tenant/organization scope.
type TenantInfo struct {
	Tenant  string `json:"tenant"`
	OrgID   string `json:"orgId,omitempty"`
	OrgSlug string `json:"orgSlug,omitempty"`
}

// UploadResponse is the restricted view of a document returned by the
// upload endpoint. Filename echoes the user-supplied name.
type UploadResponse struct {
	ID         uuid.UUID      `json:"id"`
	Filename   string         `json:"filename"`
	Size       int64          `json:"size"`
	Status     DocumentStatus `json:"status"`
	UploadedAt time.Time      `json:"uploadedAt"`
}

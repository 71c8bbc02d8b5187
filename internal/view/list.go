// Package view holds the page view-models: the document list and the
// document detail. Both trust the latest server snapshot rather than
// reconciling partial local state, so every successful mutation is followed
// by a full refetch.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"rfpdocs/internal/api"
	"rfpdocs/internal/domain"
)

// DeleteConfirm is the two-phase delete sub-state: a target document plus an
// in-flight flag. Opening the confirmation mutates nothing.
type DeleteConfirm struct {
	Document domain.Document
	InFlight bool
}

// ListModel is the view-model for the document collection page.
type ListModel struct {
	api api.DocumentAPI
	now func() time.Time

	mu            sync.Mutex
	documents     []domain.Document
	loading       bool
	errBanner     *banner
	successBanner *banner
	pendingDelete *DeleteConfirm
	closed        bool
}

// NewListModel creates a list view-model over the given API.
func NewListModel(a api.DocumentAPI) *ListModel {
	return &ListModel{api: a, now: time.Now}
}

// Load fetches the full document list and replaces the local snapshot. It is
// called on mount and again after every successful mutation.
func (m *ListModel) Load(ctx context.Context) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.loading = true
	m.mu.Unlock()

	docs, err := m.api.ListDocuments(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.loading = false
	if err != nil {
		m.errBanner = &banner{
			message: api.ErrorMessage(err, "Failed to load documents"),
			expires: m.now().Add(ErrorBannerTTL),
		}
		return
	}
	m.documents = docs
	m.errBanner = nil
}

// Documents returns the current snapshot in backend order.
func (m *ListModel) Documents() []domain.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Document, len(m.documents))
	copy(out, m.documents)
	return out
}

// Loading reports whether a list fetch is in progress.
func (m *ListModel) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// ErrorMessage returns the active error banner, if any.
func (m *ListModel) ErrorMessage() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errBanner.active(m.now())
}

// SuccessMessage returns the active success banner, if any.
func (m *ListModel) SuccessMessage() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.successBanner.active(m.now())
}

// DismissError clears the error banner before its TTL elapses.
func (m *ListModel) DismissError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errBanner = nil
}

// HandleUploadSuccess records the success banner and refetches the list.
func (m *ListModel) HandleUploadSuccess(ctx context.Context, resp *domain.UploadResponse) {
	m.mu.Lock()
	m.successBanner = &banner{
		message: fmt.Sprintf("Successfully uploaded: %s", resp.Filename),
		expires: m.now().Add(SuccessBannerTTL),
	}
	m.mu.Unlock()
	m.Load(ctx)
}

// HandleUploadError surfaces an upload failure as a transient error banner.
// No refetch happens: the server state did not change.
func (m *ListModel) HandleUploadError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errBanner = &banner{message: msg, expires: m.now().Add(ErrorBannerTTL)}
}

// RequestDelete opens the delete confirmation for the given document. It
// reports false when the id is not in the current snapshot or another
// confirmation is already open.
func (m *ListModel) RequestDelete(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pendingDelete != nil {
		return false
	}
	for _, d := range m.documents {
		if d.ID == id {
			m.pendingDelete = &DeleteConfirm{Document: d}
			return true
		}
	}
	return false
}

// PendingDelete returns the open delete confirmation, if any.
func (m *ListModel) PendingDelete() (DeleteConfirm, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pendingDelete == nil {
		return DeleteConfirm{}, false
	}
	return *m.pendingDelete, true
}

// CancelDelete closes the confirmation without touching the server.
func (m *ListModel) CancelDelete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pendingDelete != nil && !m.pendingDelete.InFlight {
		m.pendingDelete = nil
	}
}

// ConfirmDelete performs the pending delete. On success the confirmation
// closes and the list is refetched; the deleted row is never spliced out
// locally. On failure the confirmation closes, the error banner is shown,
// and no refetch happens.
func (m *ListModel) ConfirmDelete(ctx context.Context) {
	m.mu.Lock()
	if m.pendingDelete == nil || m.pendingDelete.InFlight {
		m.mu.Unlock()
		return
	}
	m.pendingDelete.InFlight = true
	target := m.pendingDelete.Document
	m.mu.Unlock()

	err := m.api.DeleteDocument(ctx, target.ID)

	m.mu.Lock()
	m.pendingDelete = nil
	if m.closed {
		m.mu.Unlock()
		return
	}
	if err != nil {
		m.errBanner = &banner{
			message: api.ErrorMessage(err, "Failed to delete document"),
			expires: m.now().Add(ErrorBannerTTL),
		}
		m.mu.Unlock()
		return
	}
	m.successBanner = &banner{
		message: "Document deleted successfully",
		expires: m.now().Add(DeleteBannerTTL),
	}
	m.mu.Unlock()
	m.Load(ctx)
}

// CanOpen reports whether a row is navigable to the detail view. Only
// completed documents are.
func (m *ListModel) CanOpen(doc domain.Document) bool {
	return doc.Status == domain.DocumentStatusCompleted
}

// Close marks the model as dismissed; late fetch results are discarded
// instead of being committed to a view nobody is looking at.
func (m *ListModel) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

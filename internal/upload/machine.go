// Package upload implements the per-widget upload state machine:
// Idle -> Validating -> Uploading(percent) -> Settling -> Idle.
package upload

import (
	"context"
	"sync"
	"time"

	"rfpdocs/internal/api"
	"rfpdocs/internal/domain"
)

// State is the machine's current phase.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateUploading
	StateSettling
)

// User-facing validation and fallback messages.
const (
	MsgTypeNotAllowed = "File type not allowed. Please upload PDF, DOC, DOCX, XLSX, or TXT files."
	MsgSizeExceeded   = "File size exceeds 50MB limit."
	MsgUploadFailed   = "Upload failed"
)

// DefaultSettleDelay is how long a finished upload stays in Settling so the
// 100% state is visible before the machine resets.
const DefaultSettleDelay = time.Second

// Machine drives one upload at a time. Inputs arriving while an upload is in
// flight are rejected with domain.ErrUploadInFlight.
type Machine struct {
	api         api.DocumentAPI
	settleDelay time.Duration
	sleep       func(time.Duration)
	onSuccess   func(*domain.UploadResponse)
	onError     func(msg string)

	mu      sync.Mutex
	state   State
	percent int
}

// NewMachine creates an upload machine. onSuccess and onError may be nil.
func NewMachine(a api.DocumentAPI, settleDelay time.Duration, onSuccess func(*domain.UploadResponse), onError func(string)) *Machine {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &Machine{
		api:         a,
		settleDelay: settleDelay,
		sleep:       time.Sleep,
		onSuccess:   onSuccess,
		onError:     onError,
	}
}

// State returns the machine's current phase.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Percent returns the last observed upload percent.
func (m *Machine) Percent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.percent
}

// Busy reports whether the drop/browse affordance should be disabled.
func (m *Machine) Busy() bool {
	return m.State() != StateIdle
}

// Upload runs one file through the machine. Validation failures return
// synchronously to Idle without any network call. On success the error is
// nil, the success callback has fired, and the machine has settled back to
// Idle with percent reset to 0.
func (m *Machine) Upload(ctx context.Context, in api.UploadInput) error {
	m.mu.Lock()
	if m.state != StateIdle {
		m.mu.Unlock()
		return domain.ErrUploadInFlight
	}
	m.state = StateValidating
	m.mu.Unlock()

	if !domain.AllowedContentTypes[in.ContentType] {
		m.reset()
		m.reportError(MsgTypeNotAllowed)
		return domain.ErrUnsupportedFileType
	}
	if in.Size > domain.MaxUploadBytes {
		m.reset()
		m.reportError(MsgSizeExceeded)
		return domain.ErrFileTooLarge
	}

	m.mu.Lock()
	m.state = StateUploading
	m.percent = 0
	m.mu.Unlock()

	resp, err := m.api.UploadDocument(ctx, in, m.setPercent)
	if err != nil {
		// Errors reset immediately; there is no display delay to sit through.
		m.reset()
		m.reportError(errorMessage(err))
		return err
	}

	m.mu.Lock()
	m.percent = 100
	m.state = StateSettling
	m.mu.Unlock()

	if m.onSuccess != nil {
		m.onSuccess(resp)
	}
	m.sleep(m.settleDelay)
	m.reset()
	return nil
}

func (m *Machine) setPercent(p int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p > m.percent {
		m.percent = p
	}
}

func (m *Machine) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateIdle
	m.percent = 0
}

func (m *Machine) reportError(msg string) {
	if m.onError != nil {
		m.onError(msg)
	}
}

// errorMessage prefers a server-supplied message, then the transport error
// text, then a generic fallback.
func errorMessage(err error) string {
	if msg, ok := api.ServerMessage(err); ok {
		return msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return MsgUploadFailed
}

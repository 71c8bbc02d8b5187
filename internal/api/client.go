// Package api wraps outbound calls to the document-management backend. Each
// operation attaches the current bearer token, resolved just-in-time, and
// returns typed results or errors from the taxonomy in errors.go. No retries
// are performed; callers refresh manually.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/google/uuid"

	"rfpdocs/internal/auth"
	"rfpdocs/internal/config"
	"rfpdocs/internal/domain"
)

const defaultTimeout = 60 * time.Second

// DocumentAPI is the backend contract consumed by the view-models.
type DocumentAPI interface {
	Whoami(ctx context.Context) (*domain.TenantInfo, error)
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UploadDocument(ctx context.Context, in UploadInput, onProgress ProgressFunc) (*domain.UploadResponse, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	GetExtraction(ctx context.Context, documentID uuid.UUID) (*domain.Extraction, error)
}

// UploadInput describes one file to upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Client is the HTTP implementation of DocumentAPI.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  auth.TokenProvider
}

// New creates a Client from config and a token provider.
func New(cfg *config.APIConfig, tokens auth.TokenProvider) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

var _ DocumentAPI = (*Client)(nil)

// Whoami returns the caller's current tenant/organization identity.
func (c *Client) Whoami(ctx context.Context) (*domain.TenantInfo, error) {
	var info domain.TenantInfo
	if err := c.getJSON(ctx, "/api/orgs/whoami", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListDocuments returns all documents for the caller's tenant, in the order
// the backend returns them. No client-side re-sort.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var docs []domain.Document
	if err := c.getJSON(ctx, "/api/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument returns a single document. Unknown ids fail with
// domain.ErrNotFound.
func (c *Client) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	if err := c.getJSON(ctx, "/api/documents/"+id.String(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetExtraction returns the extraction record for a document. An absent
// extraction fails with domain.ErrNotFound; callers decide whether that is
// an error or an expected condition.
func (c *Client) GetExtraction(ctx context.Context, documentID uuid.UUID) (*domain.Extraction, error) {
	var ex domain.Extraction
	if err := c.getJSON(ctx, "/api/documents/"+documentID.String()+"/extraction", &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// DeleteDocument removes a document. The removal is hard; there is no
// client-visible soft delete.
func (c *Client) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/documents/"+id.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return newServerError(resp.StatusCode, body)
	}
	return nil
}

// UploadDocument validates the file client-side, then performs a single
// multipart transfer. Validation failures never reach the network.
// onProgress, if non-nil, observes a non-decreasing percent sequence as the
// transport consumes the body; 100 is guaranteed before a successful return.
func (c *Client) UploadDocument(ctx context.Context, in UploadInput, onProgress ProgressFunc) (*domain.UploadResponse, error) {
	if !domain.AllowedContentTypes[in.ContentType] {
		return nil, domain.ErrUnsupportedFileType
	}
	if in.Size > domain.MaxUploadBytes {
		return nil, domain.ErrFileTooLarge
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, in.Filename))
	h.Set("Content-Type", in.ContentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("creating multipart body: %w", err)
	}
	if _, err := io.Copy(part, in.Body); err != nil {
		return nil, fmt.Errorf("buffering file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	total := int64(body.Len())
	reader := &progressReader{r: body, total: total, fn: onProgress}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/documents/upload", reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = total

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newServerError(resp.StatusCode, respBody)
	}

	var out domain.UploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	if onProgress != nil {
		// The transport has fully consumed the body by now; make the final
		// observed value exactly 100 even for empty files.
		onProgress(100)
	}
	return &out, nil
}

// getJSON performs an authenticated GET and decodes a JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newServerError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// newRequest builds a request with the current bearer token attached. The
// token is resolved fresh on every call; it is never cached here.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoToken) {
			return req, nil
		}
		return nil, fmt.Errorf("resolving bearer token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

package stub

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rfpdocs/internal/domain"
)

func (s *Server) whoami(c *gin.Context) {
	tenant := tenantOf(c)
	info := domain.TenantInfo{Tenant: tenant}
	if tenant != anonymousTenant {
		info.OrgSlug = tenant
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) listDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListDocuments(tenantOf(c)))
}

func (s *Server) getDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return
	}
	doc, ok := s.store.GetDocument(tenantOf(c), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) deleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return
	}
	if !s.store.DeleteDocument(tenantOf(c), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getExtraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return
	}
	ex, ok := s.store.GetExtraction(tenantOf(c), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "extraction not found"})
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (s *Server) uploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !domain.AllowedContentTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File type not allowed: %s", contentType)})
		return
	}
	if header.Size > domain.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 50MB limit."})
		return
	}

	id := uuid.New()
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:               id,
		Filename:         id.String() + filenameExt(header.Filename),
		OriginalFilename: header.Filename,
		ContentType:      contentType,
		FileSize:         header.Size,
		StoragePath:      fmt.Sprintf("stub://%s/%s", tenantOf(c), id),
		Status:           domain.DocumentStatusUploaded,
		UploadedAt:       now,
	}
	s.store.CreateDocument(tenantOf(c), doc)
	s.pipeline.schedule(id)

	c.JSON(http.StatusCreated, domain.UploadResponse{
		ID:         doc.ID,
		Filename:   doc.OriginalFilename,
		Size:       doc.FileSize,
		Status:     doc.Status,
		UploadedAt: doc.UploadedAt,
	})
}

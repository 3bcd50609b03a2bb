package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockStorageService struct {
	uploaded []string
	deleted  []string
}

func (m *mockStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	m.uploaded = append(m.uploaded, localFilePath)
	return "https://cdn.example.com/" + destFolder + "/image.png", nil
}

func (m *mockStorageService) DeleteFile(ctx context.Context, publicID string) error {
	m.deleted = append(m.deleted, publicID)
	return nil
}

func TestStorageDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockStorageService{}
	r := gin.New()
	r.DELETE("/api/storage", NewStorageHandler(svc).Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/storage?publicId=listings/abc123", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "listings/abc123" {
		t.Fatalf("expected delete of listings/abc123, got %v", svc.deleted)
	}
}

func TestStorageDelete_RequiresPublicID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockStorageService{}
	r := gin.New()
	r.DELETE("/api/storage", NewStorageHandler(svc).Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/storage", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(svc.deleted) != 0 {
		t.Fatalf("missing publicId must not reach the service")
	}
}

func TestStorageUpload_RequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockStorageService{}
	r := gin.New()
	r.POST("/api/storage/upload", NewStorageHandler(svc).Upload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(svc.uploaded) != 0 {
		t.Fatalf("missing file must not reach the service")
	}
}

func TestStorageUpload_RejectsUnknownFolder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockStorageService{}
	r := gin.New()
	r.POST("/api/storage/upload", NewStorageHandler(svc).Upload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", strings.NewReader("folder=secrets"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

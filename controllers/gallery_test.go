package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header; enough for content sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func uploadFile(t *testing.T, r *gin.Engine, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGalleryUploadRejectsNonImage(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := uploadFile(t, r, token, "notes.txt", []byte("definitely not an image"))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/gallery", "", nil)
	assert.Empty(t, decodeList(t, w))
}

func TestGalleryUploadStoresImage(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := uploadFile(t, r, token, "nails.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	// Without a blob store configured the image is inlined as a data URL
	assert.True(t, strings.HasPrefix(body["url"].(string), "data:image/png;base64,"))
	assert.Equal(t, "nails.png", body["caption"])
	assert.Equal(t, float64(0), body["order"])

	// A second upload appends to the gallery ordering
	w = uploadFile(t, r, token, "lashes.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["order"])
}

func TestGalleryCreateByURL(t *testing.T) {
	r := newTestRouter(t)
	token := registerAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/gallery", token, gin.H{
		"url": "https://example.com/brows.jpg", "caption": "Brow Work",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/gallery", token, gin.H{"caption": "missing url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/gallery", "", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Brow Work", list[0]["caption"])
}

package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"evrental/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestGetFileURLKeepsSubdirectory(t *testing.T) {
	uploadDir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: uploadDir}

	fh := uploadedFileHeader(t, "photo.png", "png-bytes")
	path, err := SaveUploadedFile(fh, uploadDir+"/avatars")
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err, "saved file should exist on disk")

	fileURL := GetFileURL(path)
	assert.True(t, strings.HasPrefix(fileURL, "/uploads/avatars/"), "got %s", fileURL)

	// The URL must resolve through the same static mapping main.go uses
	app := fiber.New()
	app.Static("/uploads", uploadDir)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fileURL, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetFileURLEmptyPath(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: "./public/uploads"}
	assert.Equal(t, "", GetFileURL(""))
}

func TestIsAllowedImage(t *testing.T) {
	assert.True(t, IsAllowedImage(uploadedFileHeader(t, "a.jpg", "x")))
	assert.True(t, IsAllowedImage(uploadedFileHeader(t, "a.PNG", "x")))
	assert.False(t, IsAllowedImage(uploadedFileHeader(t, "a.gif", "x")))
	assert.False(t, IsAllowedImage(uploadedFileHeader(t, "a.pdf", "x")))
}

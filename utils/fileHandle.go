package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"evrental/config"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsAllowedImage checks the uploaded file extension against the image whitelist
func IsAllowedImage(file *multipart.FileHeader) bool {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return allowedImageExts[ext]
}

// SaveUploadedFile stores the uploaded file under destDir with a unique name
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := strings.ToLower(filepath.Ext(file.Filename))
	newFilename := fmt.Sprintf("%s_%d%s", time.Now().Format("20060102150405"), time.Now().UnixNano()%1000, ext)
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL maps a stored file path to its public URL. Files live in
// per-kind subdirectories under the upload dir, so the subdirectory must
// survive into the URL for the static route to resolve it.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}

	base := filepath.ToSlash(filepath.Clean(config.AppConfig.UploadDir))
	path := filepath.ToSlash(filepath.Clean(filePath))
	if rel := strings.TrimPrefix(path, base); rel != path {
		return "/uploads/" + strings.TrimPrefix(rel, "/")
	}

	return "/uploads/" + filepath.Base(filePath)
}

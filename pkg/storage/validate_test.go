package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	jpegData = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	pngData  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	pdfData  = []byte("%PDF-1.7 content")
)

func TestValidateFile(t *testing.T) {
	t.Run("Should accept a real jpeg", func(t *testing.T) {
		result := ValidateFile(KindImage, "photo.jpg", jpegData, "image/jpeg")
		assert.True(t, result.Valid)
		assert.Equal(t, ".jpg", result.Extension)
	})

	t.Run("Should reject a disallowed extension", func(t *testing.T) {
		result := ValidateFile(KindImage, "script.exe", jpegData, "image/jpeg")
		assert.False(t, result.Valid)
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		// PNG bytes behind a .jpg name
		result := ValidateFile(KindImage, "photo.jpg", pngData, "image/png")
		assert.False(t, result.Valid)
	})

	t.Run("Should reject a document posing as an image", func(t *testing.T) {
		result := ValidateFile(KindImage, "resume.pdf", pdfData, "application/pdf")
		assert.False(t, result.Valid)
	})

	t.Run("Should accept a pdf as a document", func(t *testing.T) {
		result := ValidateFile(KindDocument, "resume.pdf", pdfData, "application/pdf")
		assert.True(t, result.Valid)
	})

	t.Run("Should reject octet-stream for images", func(t *testing.T) {
		result := ValidateFile(KindImage, "photo.jpg", jpegData, "application/octet-stream")
		assert.False(t, result.Valid)
	})

	t.Run("Should tolerate octet-stream for doc files", func(t *testing.T) {
		docData := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}
		result := ValidateFile(KindDocument, "resume.doc", docData, "application/octet-stream")
		assert.True(t, result.Valid)
	})
}

func TestMaxSize(t *testing.T) {
	assert.Equal(t, int64(MaxImageSize), MaxSize(KindImage))
	assert.Equal(t, int64(MaxDocumentSize), MaxSize(KindDocument))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("resumes", "My Resume (final).pdf")
	assert.Contains(t, key, "resumes/")
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")
}

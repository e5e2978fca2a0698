package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind classifies what an upload endpoint accepts
type Kind int

const (
	KindImage    Kind = iota // profile photos, company logos
	KindDocument             // resumes
)

// Size ceilings per upload kind
const (
	MaxImageSize    = 5 << 20  // 5MB
	MaxDocumentSize = 10 << 20 // 10MB
)

// ValidationResult contains the outcome of file validation
type ValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte signatures per allowed extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
}

var allowedExtensions = map[Kind]map[string]bool{
	KindImage:    {".jpg": true, ".jpeg": true, ".png": true, ".webp": true},
	KindDocument: {".pdf": true, ".doc": true, ".docx": true},
}

var allowedMIMETypes = map[Kind]map[string]bool{
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	},
	KindDocument: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/zip": true, // DOCX detection fallback
	},
}

// MaxSize returns the size ceiling for the given kind
func MaxSize(kind Kind) int64 {
	if kind == KindDocument {
		return MaxDocumentSize
	}
	return MaxImageSize
}

// ValidateFile performs 3-layer validation of an upload:
// 1. Extension whitelist for the kind
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist (application/octet-stream rejected except doc/docx)
func ValidateFile(kind Kind, filename string, data []byte, detectedMIME string) ValidationResult {
	result := ValidationResult{DetectedMIME: detectedMIME}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedExtensions[kind][ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	// octet-stream would let arbitrary binaries through; doc/docx are the
	// exception because sniffers often report them that way and the magic
	// bytes were already checked above
	if detectedMIME == "application/octet-stream" {
		if ext != ".docx" && ext != ".doc" {
			result.Error = "file type could not be determined"
			return result
		}
	} else if !allowedMIMETypes[kind][detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

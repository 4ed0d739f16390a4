package validation

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxResumeSize is the upload cap for resume files.
const MaxResumeSize = 5 * 1024 * 1024 // 5 MB

// Magic byte signatures for allowed resume types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidateResume checks extension whitelist, size cap and magic bytes.
// Returns a field-level error message suitable for the client.
func ValidateResume(filename string, size int64, data []byte) error {
	if filename == "" || size == 0 {
		return fmt.Errorf("please upload your resume")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("resume must be a PDF, DOC or DOCX file")
	}

	if size > MaxResumeSize {
		return fmt.Errorf("resume file size must be under 5 MB")
	}

	if !validateMagicBytes(ext, data) {
		return fmt.Errorf("resume content does not match its file extension")
	}

	return nil
}

// validateMagicBytes checks if file content starts with expected magic bytes
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

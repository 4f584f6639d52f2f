package upload

import "strings"

// Accepted upload MIME types and extensions. Anything else is rejected
// before an UploadedDocument is created.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain":    true,
	"text/markdown": true,
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
}

// isAllowedFileType accepts a file when either its MIME type or its filename
// extension is on the allow-list. Markdown files frequently arrive with an
// empty or generic MIME type, so the .md extension alone is sufficient.
func isAllowedFileType(filename, mimeType string) bool {
	if allowedMIMETypes[mimeType] {
		return true
	}
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx:])]
}

package jobs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// MaxAttachmentSize is the ceiling for uploaded vacancy attachments.
const MaxAttachmentSize = 8 << 20 // 8 MiB

var allowedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg", ".gif"}

// AttachmentKind classifies an attachment by its file-extension suffix.
// The classification is deliberately extension-based, not content-sniffed:
// it drives display, not a security boundary.
type AttachmentKind int

const (
	AttachmentUnknown AttachmentKind = iota
	AttachmentPdf
	AttachmentImage
)

// String returns the string representation of the attachment kind
func (k AttachmentKind) String() string {
	switch k {
	case AttachmentPdf:
		return "pdf"
	case AttachmentImage:
		return "image"
	default:
		return "unknown"
	}
}

// ClassifyAttachment maps a filename to its AttachmentKind. The suffix
// check is case-insensitive.
func ClassifyAttachment(filename string) AttachmentKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return AttachmentPdf
	case ".png", ".jpg", ".jpeg", ".gif":
		return AttachmentImage
	default:
		return AttachmentUnknown
	}
}

// ValidateAttachment enforces the attachment contract at the engine
// boundary: allowed suffix and the size ceiling. Callers that bypass the
// HTTP form path still hit this check.
func ValidateAttachment(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !utils.Contains(allowedExtensions, ext) {
		return utils.NewInvalidAttachmentError(
			fmt.Sprintf("file type %q is not allowed; allowed types are pdf, png, jpg, jpeg, gif", ext))
	}
	if size > MaxAttachmentSize {
		return utils.NewAttachmentTooLargeError("attachments may not exceed 8 MB")
	}
	return nil
}

package jobs_test

import (
	"testing"

	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

func TestClassifyAttachment(t *testing.T) {
	cases := []struct {
		filename string
		want     jobs.AttachmentKind
	}{
		{"posting.pdf", jobs.AttachmentPdf},
		{"POSTING.PDF", jobs.AttachmentPdf},
		{"flyer.png", jobs.AttachmentImage},
		{"flyer.jpg", jobs.AttachmentImage},
		{"flyer.JPEG", jobs.AttachmentImage},
		{"flyer.gif", jobs.AttachmentImage},
		{"malware.exe", jobs.AttachmentUnknown},
		{"archive.tar.gz", jobs.AttachmentUnknown},
		{"noextension", jobs.AttachmentUnknown},
		{"", jobs.AttachmentUnknown},
	}
	for _, c := range cases {
		if got := jobs.ClassifyAttachment(c.filename); got != c.want {
			t.Errorf("ClassifyAttachment(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}

func TestAttachmentKindString(t *testing.T) {
	if got := jobs.AttachmentPdf.String(); got != "pdf" {
		t.Errorf("AttachmentPdf.String() = %q, want %q", got, "pdf")
	}
	if got := jobs.AttachmentImage.String(); got != "image" {
		t.Errorf("AttachmentImage.String() = %q, want %q", got, "image")
	}
	if got := jobs.AttachmentUnknown.String(); got != "unknown" {
		t.Errorf("AttachmentUnknown.String() = %q, want %q", got, "unknown")
	}
}

func TestValidateAttachment(t *testing.T) {
	const mb = 1 << 20

	cases := []struct {
		name      string
		filename  string
		size      int64
		wantError bool
		wantCode  int
	}{
		{"small pdf accepted", "cv.pdf", 1 * mb, false, 0},
		{"image at ceiling accepted", "flyer.jpeg", 8 * mb, false, 0},
		{"oversized pdf rejected", "cv.pdf", 9 * mb, true, 400},
		{"executable rejected", "setup.exe", 1 << 10, true, 400},
		{"uppercase extension accepted", "FLYER.GIF", 2 * mb, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := jobs.ValidateAttachment(c.filename, c.size)
			if c.wantError && err == nil {
				t.Fatalf("ValidateAttachment(%q, %d) expected error, got nil", c.filename, c.size)
			}
			if !c.wantError && err != nil {
				t.Fatalf("ValidateAttachment(%q, %d) unexpected error: %v", c.filename, c.size, err)
			}
			if c.wantError {
				cerr, ok := utils.AsCustomError(err)
				if !ok {
					t.Fatalf("expected *utils.CustomError, got %T", err)
				}
				if cerr.Code != c.wantCode {
					t.Errorf("error code = %d, want %d", cerr.Code, c.wantCode)
				}
			}
		})
	}
}

// An oversized payload and a bad extension produce distinct errors.
func TestValidateAttachment_ErrorKinds(t *testing.T) {
	tooBig := jobs.ValidateAttachment("report.pdf", jobs.MaxAttachmentSize+1)
	if tooBig == nil || tooBig.Error() == "" {
		t.Fatal("expected size error")
	}

	badExt := jobs.ValidateAttachment("report.docx", 1024)
	if badExt == nil {
		t.Fatal("expected extension error")
	}

	if tooBig.Error() == badExt.Error() {
		t.Error("size and extension violations should produce distinct errors")
	}
}

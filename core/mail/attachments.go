package mail

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// collectAttachments scans dir non-recursively and reads every regular file
// into an Attachment. Entries are classified with os.Stat, so symlinks to
// regular files are followed; directories and other non-regular entries are
// skipped silently, as are entries whose stat fails (e.g. broken symlinks).
//
// A read failure on any single file aborts the whole scan with an
// AttachmentError naming that file. A missing directory means no attachments.
func collectAttachments(dir string) ([]Attachment, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, AttachmentError{Filename: dir, Err: err}
	}

	var attachments []Attachment
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, AttachmentError{Filename: entry.Name(), Err: err}
		}

		attachments = append(attachments, Attachment{
			Filename: entry.Name(),
			Content:  content,
		})
	}

	return attachments, nil
}

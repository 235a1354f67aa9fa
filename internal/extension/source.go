package extension

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultFileID identifies the extension archive on the file host.
	DefaultFileID = "1AlOwMByT5Bb_Oz2TLD7KD5PParKUx581"
	// DefaultURLTemplate requests export/download semantics for a file id.
	DefaultURLTemplate = "https://drive.google.com/uc?export=download&id=%s&confirm=t"
	DefaultFilename    = "signify-extension.zip"

	// DefaultMinBytes is the payload size a fetched archive must exceed.
	DefaultMinBytes int64 = 1000
	// DefaultMaxBytes caps how much of a fetched payload is held in memory.
	DefaultMaxBytes int64 = 64 << 20
	// DefaultFrameLinger is how long the hidden frame fallback keeps the
	// download marked in progress.
	DefaultFrameLinger = 2 * time.Second
)

// Source describes the remote archive offered to users.
type Source struct {
	FileID      string
	URLTemplate string
	Filename    string
}

// DefaultSource returns the hosted Signify extension archive.
func DefaultSource() Source {
	return Source{
		FileID:      DefaultFileID,
		URLTemplate: DefaultURLTemplate,
		Filename:    DefaultFilename,
	}
}

// URL returns the download URL with the file id substituted into the template.
func (s Source) URL() string {
	return fmt.Sprintf(s.URLTemplate, url.QueryEscape(s.FileID))
}

package persistence

import (
	"context"
	"io"
	"time"
)

// ProofUpload is an uploaded proof image as received from the client
type ProofUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ProofStorage keeps proof images and returns a reference clients can fetch
type ProofStorage interface {
	// Save stores the image and returns its reference
	//
	// Possible errors:
	// - ErrProofTooLarge: If the image exceeds the configured limit
	// - ErrUnsupportedProof: If the content is not an accepted image type
	Save(ctx context.Context, upload ProofUpload) (string, error)

	// Open returns a stored image for streaming back to an authorized caller. The caller
	// closes Content.
	//
	// Possible errors:
	// - ErrNotFound: If no image is stored under ref
	Open(ctx context.Context, ref string) (*ProofFile, error)

	// Delete removes a stored image; used to clean up after a failed submission
	Delete(ctx context.Context, ref string) error
}

// ProofFile is a stored proof image opened for reading
type ProofFile struct {
	Name    string
	ModTime time.Time
	Content io.ReadSeekCloser
}

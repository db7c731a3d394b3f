package ports

import (
	"context"
	"io"
)

// FileStorage stores uploaded files and returns the public URL they are served from.
type FileStorage interface {
	// Save writes r under folder (e.g. "proofs", "avatars") with a generated name whose
	// extension follows contentType.
	Save(ctx context.Context, folder, contentType string, r io.Reader) (string, error)
}

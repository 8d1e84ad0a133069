package storage

import "context"

// UploadResult describes an object after a successful upload.
type UploadResult struct {
	PublicURL string
	ObjectID  string
}

// ObjectStorage is the remote provider holding the actual PDF bytes. The
// provider is treated as opaque: upload a local file under a chosen object id
// and get back a public URL, or delete an object by id.
type ObjectStorage interface {
	// Upload stores the file at localPath under objectID with public read
	// access and returns the public URL.
	Upload(ctx context.Context, localPath, objectID string) (UploadResult, error)

	// Delete removes the object with the given id.
	Delete(ctx context.Context, objectID string) error
}

package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/appkit-dev/appkit/pkg/tenant"
)

// ACL controls who may read a stored file.
type ACL string

const (
	ACLPrivate    ACL = "private"
	ACLPublicRead ACL = "public-read"
)

// File describes a stored upload.
type File struct {
	// Key is the storage key, unique per upload.
	Key string

	// Name is the original (unslugged) filename.
	Name string

	// ContentType is the sniffed MIME type.
	ContentType string

	// ACL is the access level the file was stored with.
	ACL ACL

	// Size in bytes.
	Size int64
}

// Storage is the backend an Uploader writes to.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, acl ACL) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(ctx context.Context, key string, acl ACL) (string, error)
}

// Uploader validates incoming files and hands them to a Storage backend.
type Uploader struct {
	storage Storage
	maxSize int64
	allowed map[string]struct{}
	acl     ACL
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithMaxSize caps accepted file size in bytes. Zero means no limit.
func WithMaxSize(n int64) Option {
	return func(u *Uploader) {
		u.maxSize = n
	}
}

// WithAllowedTypes restricts uploads to the given MIME types. Without this
// option every sniffed type is accepted.
func WithAllowedTypes(types ...string) Option {
	return func(u *Uploader) {
		if u.allowed == nil {
			u.allowed = make(map[string]struct{}, len(types))
		}
		for _, t := range types {
			u.allowed[t] = struct{}{}
		}
	}
}

// WithACL sets the ACL applied to stored files. Defaults to private.
func WithACL(acl ACL) Option {
	return func(u *Uploader) {
		u.acl = acl
	}
}

// New creates an Uploader writing to storage.
func New(storage Storage, opts ...Option) *Uploader {
	u := &Uploader{storage: storage, acl: ACLPrivate}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ImageTypes returns the MIME allowlist for common web images.
func ImageTypes() []string {
	return []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
}

// Upload validates and stores the file, returning its metadata. The
// sniffed content type is authoritative; the filename only feeds key
// generation. When the context carries a tenant the key is prefixed with
// the tenant id.
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader, size int64) (*File, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if u.maxSize > 0 && size > u.maxSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, size, u.maxSize)
	}

	contentType, body, err := sniffMIME(r)
	if err != nil {
		return nil, err
	}

	if u.allowed != nil {
		if _, ok := u.allowed[contentType]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
		}
	}

	prefix := ""
	if t, ok := tenant.FromContext(ctx); ok {
		prefix = t.ID
	}
	key := BuildKey(prefix, filename)

	if err := u.storage.Put(ctx, key, body, size, contentType, u.acl); err != nil {
		return nil, err
	}

	return &File{
		Key:         key,
		Name:        filename,
		ContentType: contentType,
		ACL:         u.acl,
		Size:        size,
	}, nil
}

// Delete removes a stored file.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	return u.storage.Delete(ctx, key)
}

// URL returns an access URL for the stored file.
func (u *Uploader) URL(ctx context.Context, file *File) (string, error) {
	return u.storage.URL(ctx, file.Key, file.ACL)
}

// sniffMIME detects the content type from the first 512 bytes and returns
// a reader that replays them.
func sniffMIME(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, fmt.Errorf("upload: reading file head: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	// Strip charset parameters ("text/plain; charset=utf-8").
	if idx := bytes.IndexByte([]byte(contentType), ';'); idx != -1 {
		contentType = contentType[:idx]
	}

	return contentType, io.MultiReader(bytes.NewReader(head), r), nil
}

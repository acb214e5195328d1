package upload_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appkit-dev/appkit/pkg/tenant"
	"github.com/appkit-dev/appkit/pkg/upload"
)

// pngHeader is a minimal valid PNG signature for MIME sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

type fakeStorage struct {
	putKey  string
	putType string
	putACL  upload.ACL
	putData []byte
	deleted []string
}

func (s *fakeStorage) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string, acl upload.ACL) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.putKey, s.putType, s.putACL, s.putData = key, contentType, acl, data
	return nil
}

func (s *fakeStorage) Get(context.Context, string) (io.ReadCloser, error) {
	return nil, upload.ErrNotFound
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) URL(_ context.Context, key string, _ upload.ACL) (string, error) {
	return "https://cdn.example.com/" + key, nil
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "simple", in: "photo", expected: "photo"},
		{name: "uppercase", in: "My Photo", expected: "my-photo"},
		{name: "diacritics stripped", in: "Älbum café", expected: "album-cafe"},
		{name: "special chars collapsed", in: "a__b!!c", expected: "a-b-c"},
		{name: "trailing junk trimmed", in: "photo!!!", expected: "photo"},
		{name: "digits kept", in: "IMG 2024 01", expected: "img-2024-01"},
		{name: "empty", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, upload.Slugify(tt.in))
		})
	}
}

func TestBuildKey(t *testing.T) {
	t.Parallel()

	t.Run("slug plus suffix plus extension", func(t *testing.T) {
		t.Parallel()

		key := upload.BuildKey("", "My Photo.JPG")
		assert.True(t, strings.HasPrefix(key, "my-photo-"), "key %q", key)
		assert.True(t, strings.HasSuffix(key, ".jpg"), "key %q", key)
	})

	t.Run("tenant prefix", func(t *testing.T) {
		t.Parallel()

		key := upload.BuildKey("t-1", "doc.pdf")
		assert.True(t, strings.HasPrefix(key, "t-1/doc-"), "key %q", key)
	})

	t.Run("unslugable name falls back", func(t *testing.T) {
		t.Parallel()

		key := upload.BuildKey("", "!!!.png")
		assert.True(t, strings.HasPrefix(key, "file-"), "key %q", key)
	})

	t.Run("keys are unique", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, upload.BuildKey("", "a.png"), upload.BuildKey("", "a.png"))
	})
}

func TestUpload(t *testing.T) {
	t.Parallel()

	t.Run("stores with sniffed type", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{}
		uploader := upload.New(store)

		file, err := uploader.Upload(context.Background(), "pic.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
		require.NoError(t, err)

		assert.Equal(t, "image/png", file.ContentType)
		assert.Equal(t, upload.ACLPrivate, file.ACL)
		assert.Equal(t, file.Key, store.putKey)
		assert.Equal(t, pngHeader, store.putData)
	})

	t.Run("tenant prefix from context", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{}
		uploader := upload.New(store)

		ctx := tenant.WithTenant(context.Background(), tenant.Tenant{ID: "t-42"})
		file, err := uploader.Upload(ctx, "pic.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(file.Key, "t-42/"), "key %q", file.Key)
	})

	t.Run("empty file rejected", func(t *testing.T) {
		t.Parallel()

		uploader := upload.New(&fakeStorage{})
		_, err := uploader.Upload(context.Background(), "x.png", bytes.NewReader(nil), 0)
		require.ErrorIs(t, err, upload.ErrEmptyFile)
	})

	t.Run("size limit enforced", func(t *testing.T) {
		t.Parallel()

		uploader := upload.New(&fakeStorage{}, upload.WithMaxSize(4))
		_, err := uploader.Upload(context.Background(), "x.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
		require.ErrorIs(t, err, upload.ErrFileTooLarge)
	})

	t.Run("type allowlist enforced", func(t *testing.T) {
		t.Parallel()

		uploader := upload.New(&fakeStorage{}, upload.WithAllowedTypes(upload.ImageTypes()...))

		_, err := uploader.Upload(context.Background(), "notes.txt", strings.NewReader("plain text content"), 18)
		require.ErrorIs(t, err, upload.ErrUnsupportedType)

		_, err = uploader.Upload(context.Background(), "pic.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
		require.NoError(t, err)
	})

	t.Run("public acl propagated", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{}
		uploader := upload.New(store, upload.WithACL(upload.ACLPublicRead))

		file, err := uploader.Upload(context.Background(), "pic.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
		require.NoError(t, err)
		assert.Equal(t, upload.ACLPublicRead, file.ACL)
		assert.Equal(t, upload.ACLPublicRead, store.putACL)
	})

	t.Run("delete and url passthrough", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{}
		uploader := upload.New(store)

		require.NoError(t, uploader.Delete(context.Background(), "k1"))
		assert.Equal(t, []string{"k1"}, store.deleted)

		u, err := uploader.URL(context.Background(), &upload.File{Key: "k1"})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/k1", u)
	})
}

func TestS3ConfigValidation(t *testing.T) {
	t.Parallel()

	_, err := upload.NewS3Storage(upload.S3Config{})
	require.ErrorIs(t, err, upload.ErrInvalidConfig)

	_, err = upload.NewS3Storage(upload.S3Config{Bucket: "b"})
	require.ErrorIs(t, err, upload.ErrInvalidConfig)

	store, err := upload.NewS3Storage(upload.S3Config{Bucket: "b", AccessKey: "ak", SecretKey: "sk"})
	require.NoError(t, err)
	require.NotNil(t, store)
}

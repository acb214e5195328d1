// Package upload handles media uploads: validation, storage key
// generation, and delivery to an S3-compatible backend.
//
// An Uploader wraps a Storage backend with validation rules and naming
// policy:
//
//	store, err := upload.NewS3Storage(upload.S3Config{
//		Bucket:    cfg.String("storage.bucket", ""),
//		AccessKey: cfg.String("storage.access_key", ""),
//		SecretKey: cfg.String("storage.secret_key", ""),
//	})
//
//	uploader := upload.New(store,
//		upload.WithMaxSize(10<<20),
//		upload.WithAllowedTypes(upload.ImageTypes()...),
//	)
//
//	file, err := uploader.Upload(ctx, "Photo Älbum.JPG", r, size)
//	// file.Key: "photo-album-5f3a9c1e2b7d.jpg"
//
// MIME types are sniffed from content, never trusted from the filename.
// Keys are slugified and suffixed with random hex so concurrent uploads of
// the same filename never collide; when a tenant is present in the context
// its id becomes the key prefix, keeping per-tenant files separable.
package upload

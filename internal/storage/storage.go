package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"artist-booking-backend/internal/parse"
)

// Folders used for artist media.
const (
	FolderArtists = "artists"
	FolderVideos  = "videos"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)
}

// ObjectName builds "<folder>/<unix millis>-<sanitised filename>".
func ObjectName(folder, filename string, now time.Time) string {
	return folder + "/" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + parse.FileName(filename)
}

// PublicURL is the anonymous download URL of an object.
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}

type openFunc func(ctx context.Context, object, contentType string) io.WriteCloser

// GCSUploader writes objects to a Google Cloud Storage bucket.
type GCSUploader struct {
	client *storage.Client
	bucket string
	open   openFunc
	now    func() time.Time
}

// NewGCSUploader creates a client for bucket. Without a credentials file the
// application default credentials are used.
func NewGCSUploader(ctx context.Context, bucket, credentialsFile string) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	u := &GCSUploader{client: client, bucket: bucket, now: time.Now}
	u.open = func(ctx context.Context, object, contentType string) io.WriteCloser {
		w := client.Bucket(bucket).Object(object).NewWriter(ctx)
		w.ContentType = contentType
		w.CacheControl = "public, max-age=31536000"
		return w
	}
	return u, nil
}

// Upload streams r into a new object and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	object := ObjectName(folder, filename, u.now())
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}

	w := u.open(ctx, object, contentType)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return PublicURL(u.bucket, object), nil
}

// Close releases the underlying client.
func (u *GCSUploader) Close() error {
	if u.client == nil {
		return nil
	}
	return u.client.Close()
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const publicURLPrefix = "https://storage.googleapis.com/"

// MaxAvatarBytes caps uploads read into memory for type detection.
const MaxAvatarBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// DetectImageType sniffs the content type of data and rejects anything that
// is not a web image.
func DetectImageType(data []byte) (*mimetype.MIME, error) {
	mime := mimetype.Detect(data)
	for m := mime; m != nil; m = m.Parent() {
		if allowedImageTypes[m.String()] {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unsupported file type %s", mime.String())
}

// UploadFile stores an image under folder and returns its public URL.
// The stored content type is sniffed; fileType is not trusted.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, MaxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %v", err)
	}
	if len(data) > MaxAvatarBytes {
		return "", fmt.Errorf("file exceeds %d bytes", MaxAvatarBytes)
	}

	mime, err := DetectImageType(data)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s/%s-%s%s",
		strings.Trim(folder, "/"), uuid.New().String(), time.Now().Format("20060102150405"), mime.Extension())

	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = mime.String()
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return publicURLPrefix + c.bucketName + "/" + filename, nil
}

// DeleteFile removes an object previously returned by UploadFile. URLs of
// other hosts or buckets are rejected.
func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	if !strings.HasPrefix(fileURL, publicURLPrefix) {
		return fmt.Errorf("invalid GCS URL format")
	}

	parts := strings.SplitN(strings.TrimPrefix(fileURL, publicURLPrefix), "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	if err := c.client.Bucket(c.bucketName).Object(parts[1]).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

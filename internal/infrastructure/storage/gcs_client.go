package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

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

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadBase64Image decodes a data-URI (or raw base64) image, writes it under
// items/, and returns the public URL. Unknown content types fall back to JPEG
// rather than failing the listing.
func (c *CloudStorageClient) UploadBase64Image(ctx context.Context, base64Data, itemID, userID string) (string, error) {
	contentType := "image/jpeg"
	extension := "jpg"
	encoded := base64Data

	if idx := strings.Index(base64Data, ","); idx >= 0 {
		header := base64Data[:idx]
		encoded = base64Data[idx+1:]

		switch {
		case strings.Contains(header, "image/png"):
			contentType, extension = "image/png", "png"
		case strings.Contains(header, "image/gif"):
			contentType, extension = "image/gif", "gif"
		case strings.Contains(header, "image/webp"):
			contentType, extension = "image/webp", "webp"
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image data: %v", err)
	}

	objectName := fmt.Sprintf("items/%s-%s.%s", itemID, time.Now().UTC().Format("20060102150405"), extension)

	writer := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	writer.Metadata = map[string]string{
		"uploaded-by": userID,
		"upload-date": time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write image: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish image upload: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

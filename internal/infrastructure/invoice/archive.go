package invoice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"rugcare.backend/internal/domain/entities"
)

// objectWriter opens a writer for one object in a bucket
type objectWriter func(ctx context.Context, bucket, object, contentType string) io.WriteCloser

// GCSArchive keeps a copy of every generated invoice in a bucket
type GCSArchive struct {
	bucket    string
	newWriter objectWriter
	closer    io.Closer
}

// NewGCSArchive connects to Cloud Storage. Explicit credentials JSON wins over ADC.
func NewGCSArchive(ctx context.Context, bucket, credentialsJSON string) (*GCSArchive, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSArchive{
		bucket: bucket,
		newWriter: func(ctx context.Context, bucket, object, contentType string) io.WriteCloser {
			w := client.Bucket(bucket).Object(object).NewWriter(ctx)
			w.ContentType = contentType
			return w
		},
		closer: client,
	}, nil
}

// ObjectName returns the archive key for an invoice
func ObjectName(jobNumber, sessionID string) string {
	return fmt.Sprintf("invoices/%s-%s.pdf", safeName(jobNumber, "unassigned"), safeName(sessionID, "unknown"))
}

// Archive uploads the invoice and returns its gs:// location
func (a *GCSArchive) Archive(ctx context.Context, c *entities.ConfirmationContext, inv *entities.InvoiceAttachment) (string, error) {
	if inv == nil || len(inv.Content) == 0 {
		return "", fmt.Errorf("archive invoice: empty document")
	}
	object := ObjectName(c.JobNumber, c.SessionID)

	w := a.newWriter(ctx, a.bucket, object, inv.ContentType)
	if _, err := w.Write(inv.Content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write invoice %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload invoice %s: %w", object, err)
	}
	return fmt.Sprintf("gs://%s/%s", a.bucket, object), nil
}

// Close releases the storage client
func (a *GCSArchive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

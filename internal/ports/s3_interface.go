package ports

import (
	"context"
	"io"
)

// AvatarStorage : для S3
type AvatarStorage interface {
	UploadAvatar(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

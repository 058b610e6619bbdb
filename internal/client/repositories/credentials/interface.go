package credentials

import "context"

// Store reads, writes and clears the stored credential.
type Store interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

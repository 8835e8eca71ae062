package ports

import "context"

// Contract for checking whether a backend answers at url.
// A nil error means a 2xx response arrived before ctx expired.
type LivenessProber interface {
	Probe(ctx context.Context, url string) error
}

// Package workers runs the client's background jobs.
//
// A [Worker] is started with a context and stopped explicitly; [Workers]
// starts and stops a set of them together.
package workers

import (
	"context"

	"github.com/MKhiriev/go-id-wallet/models"
)

// Worker is a background job. Start must not block; Stop blocks until the
// job has fully exited and is a no-op when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Refresher re-hydrates the engine state.
type Refresher interface {
	Refresh(ctx context.Context) (*models.IdentityRecord, error)
}

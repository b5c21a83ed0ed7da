// Package store holds accepted registration records for the lifetime of the
// process. The interface keeps the validation core decoupled from the backing
// container so a real persistence backend could replace it without rewiring
// business code.
package store

import (
	"context"

	"signup/internal/user/models"
)

// UserStore is an insertion-ordered, append-only record store. Records are
// never updated or deleted once appended.
type UserStore interface {
	Append(ctx context.Context, record models.UserRecord) (string, error)
	List(ctx context.Context) ([]models.UserRecord, error)
}

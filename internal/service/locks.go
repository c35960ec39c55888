package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
)

// UserLocks hands out one single-slot semaphore per user. Entries are never
// evicted; the set of users is bounded by the users table.
type UserLocks struct {
	locks *xsync.MapOf[string, chan struct{}]
}

func NewUserLocks() *UserLocks {
	return &UserLocks{
		locks: xsync.NewMapOf[chan struct{}](),
	}
}

// Lock blocks until uid's slot is held or ctx is done. On success it returns
// the matching unlock.
func (ul *UserLocks) Lock(ctx context.Context, uid uuid.UUID) (unlock func(), err error) {
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	sem, _ := ul.locks.LoadOrStore(uid.String(), make(chan struct{}, 1))
	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// File: internal/worker/janitor.go
package worker

import (
	"context"
	"log"
	"time"

	"hub-oauth/internal/database"
	"hub-oauth/internal/store"
)

// Overridable in tests.
var (
	purgeExpiredAuthCodes    = store.PurgeExpiredAuthCodes
	purgeExpiredAccessTokens = store.PurgeExpiredAccessTokens
)

// Janitor periodically submits purge tasks for expired authorization codes
// and access tokens. Expiry is enforced at use time regardless; the janitor
// only keeps the tables from growing without bound.
type Janitor struct {
	pool     Pool
	db       database.DB
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewJanitor(p Pool, db database.DB, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Janitor{
		pool:     p,
		db:       db,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop. Call Stop before stopping the pool.
func (j *Janitor) Start() {
	go func() {
		defer close(j.done)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-j.stop:
				return
			case <-ticker.C:
				j.pool.Submit(j.purge)
			}
		}
	}()
}

// Stop ends the tick loop; a purge already submitted may still be running on
// the pool.
func (j *Janitor) Stop() {
	close(j.stop)
	<-j.done
}

func (j *Janitor) purge() {
	ctx := context.Background()
	if _, err := purgeExpiredAuthCodes(ctx, j.db); err != nil {
		log.Printf("janitor: purge auth codes: %v", err)
	}
	if _, err := purgeExpiredAccessTokens(ctx, j.db); err != nil {
		log.Printf("janitor: purge access tokens: %v", err)
	}
}

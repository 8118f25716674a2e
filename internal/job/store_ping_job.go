package job

import (
	"context"
	"database/sql"
	"time"

	"github.com/gumutoni/tasktidy/internal/service"
)

// StorePingJob probes the task store and feeds the result to the health
// endpoint. A store failure after startup is non-fatal; requests keep
// surfacing 500s until the store recovers.
type StorePingJob struct {
	db     *sql.DB
	health *service.StoreHealth
}

func NewStorePingJob(db *sql.DB, health *service.StoreHealth) *StorePingJob {
	return &StorePingJob{db: db, health: health}
}

func (j *StorePingJob) Name() string {
	return "store-ping"
}

func (j *StorePingJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err := j.db.PingContext(ctx)
	j.health.Record(err)
	return err
}

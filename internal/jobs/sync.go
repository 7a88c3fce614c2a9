package jobs

import (
	"context"
	"time"

	"github.com/emrgen/pagesync/internal/service"
	"github.com/sirupsen/logrus"
)

// DatabaseSyncer is the part of service.Syncer the sync task needs.
type DatabaseSyncer interface {
	SyncDatabase(ctx context.Context, databaseID string) (*service.Report, error)
}

var _ CronJob = (*SyncTask)(nil)

// SyncTask syncs one database on a cron schedule.
type SyncTask struct {
	syncer     DatabaseSyncer
	databaseID string
	cron       string
	timeout    time.Duration
	reports    chan<- *service.Report
}

func NewSyncTask(schedule, databaseID string, syncer DatabaseSyncer) *SyncTask {
	return &SyncTask{
		syncer:     syncer,
		databaseID: databaseID,
		cron:       schedule,
		timeout:    10 * time.Minute,
	}
}

// WithReports makes every finished run send its report to ch without blocking.
func (s *SyncTask) WithReports(ch chan<- *service.Report) *SyncTask {
	s.reports = ch
	return s
}

func (s *SyncTask) ID() string {
	return "sync:" + s.databaseID
}

func (s *SyncTask) Schedule() string {
	return s.cron
}

func (s *SyncTask) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log := logrus.WithFields(logrus.Fields{"task": s.ID()})
	log.Info("sync task running")

	report, err := s.syncer.SyncDatabase(ctx, s.databaseID)
	if err != nil {
		log.Errorf("sync task failed: %v", err)
		return
	}

	log.Infof("sync task finished: %s", report)
	if s.reports != nil {
		select {
		case s.reports <- report:
		default:
		}
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/emrgen/pagesync/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

func watchCmd() *cobra.Command {
	var databaseID string
	var schedule string

	command := &cobra.Command{
		Use:     "watch",
		Short:   "sync a database on a schedule",
		Long:    `sync a database on a cron schedule until interrupted. Defaults to SYNC_SCHEDULE.`,
		Example: "pagesync watch -d <database-id> -s '@every 5m'",
		Run: func(cmd *cobra.Command, args []string) {
			client, cfg, err := newClient(context.Background())
			if err != nil {
				logrus.Error(err)
				return
			}
			defer client.Close()

			id, err := resolveID(databaseID, cfg.Notion.DatabaseID)
			if err != nil {
				logrus.Errorf("database id: %v", err)
				return
			}
			if schedule == "" {
				schedule = cfg.Sync.Schedule
			}

			executor := jobs.NewTaskExecutor(nil, []jobs.CronJob{
				jobs.NewSyncTask(schedule, id, client.Syncer()),
			})
			if err := executor.Run(); err != nil {
				logrus.Error(err)
				return
			}
			logrus.Infof("syncing %s on schedule %q, press Ctrl+C to stop", id, schedule)

			// listen for interrupt signal to stop the scheduler
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, unix.SIGTERM, unix.SIGINT)
			<-sigs
			// clean Ctrl+C output
			fmt.Println()

			executor.Stop()
		},
	}

	command.Flags().StringVarP(&databaseID, "database-id", "d", "", "database id or url")
	command.Flags().StringVarP(&schedule, "schedule", "s", "", "cron schedule")

	return command
}

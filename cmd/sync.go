package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	var databaseID string

	command := &cobra.Command{
		Use:     "sync",
		Short:   "sync every page of a database",
		Long:    `sync every page of a database into the blog, creating new articles and updating existing ones. Defaults to NOTION_DATABASE_ID.`,
		Example: "pagesync sync -d <database-id>",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			client, cfg, err := newClient(ctx)
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

			report, err := client.Syncer().SyncDatabase(ctx, id)
			if report != nil {
				printReport(report)
			}
			if err != nil {
				logrus.Error(err)
			}
		},
	}

	command.Flags().StringVarP(&databaseID, "database-id", "d", "", "database id or url")

	return command
}

package cmd

import (
	"context"
	"fmt"

	"github.com/emrgen/pagesync/internal/notion"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func queryCmd() *cobra.Command {
	var databaseID string
	var tags []string
	var sorts []string
	var descending bool
	var limit int
	var cursor string

	command := &cobra.Command{
		Use:     "query",
		Short:   "query a database",
		Long:    `query a database and list one page of results. The request body is printed before it is sent.`,
		Example: "pagesync query -d <database-id> --filter-tag go --filter-tag sync --sort Name --desc",
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

			b := client.Notion().Query(notion.Databases(id))
			if len(tags) > 0 {
				tagType, err := notion.NewPropertyType(notion.KindMultiSelect.Tag(), cfg.Sync.TagProperty)
				if err != nil {
					logrus.Error(err)
					return
				}
				for _, tag := range tags {
					b.Filter(tagType.Contains(tag))
				}
			}
			direction := notion.Ascending
			if descending {
				direction = notion.Descending
			}
			for _, field := range sorts {
				b.Sort(field, direction)
			}
			if limit > 0 {
				b.Limit(limit)
			}
			if cursor != "" {
				b.Cursor(cursor)
			}

			body, err := b.Body()
			if err != nil {
				logrus.Error(err)
				return
			}
			printField("Request", fmt.Sprintf("%s %s %s", b.Resource().Method(), b.Resource().Path(), body))

			db, err := notion.Execute[notion.Database](ctx, b)
			if err != nil {
				logrus.Error(err)
				return
			}

			printPages(db.Pages, cfg.Sync.SlugProperty)
			for _, failure := range db.Failures {
				logrus.Warn(failure.Error())
			}
			if db.HasMore {
				printField("Next cursor", db.NextCursor)
			}
		},
	}

	command.Flags().StringVarP(&databaseID, "database-id", "d", "", "database id or url")
	command.Flags().StringArrayVar(&tags, "filter-tag", nil, "only pages carrying the tag, repeatable")
	command.Flags().StringArrayVar(&sorts, "sort", nil, "sort by property, repeatable")
	command.Flags().BoolVar(&descending, "desc", false, "sort descending")
	command.Flags().IntVarP(&limit, "limit", "l", 0, "page size")
	command.Flags().StringVar(&cursor, "cursor", "", "start cursor")

	command.Flags().SortFlags = false

	return command
}

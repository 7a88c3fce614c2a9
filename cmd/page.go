package cmd

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/emrgen/pagesync"
	"github.com/emrgen/pagesync/internal/model"
	"github.com/emrgen/pagesync/internal/notion"
	"github.com/emrgen/pagesync/internal/service"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "page commands",
}

func init() {
	pageCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	pageCmd.AddCommand(getPageCmd())
	pageCmd.AddCommand(syncPageCmd())
}

func getPageCmd() *cobra.Command {
	var pageID string
	var content bool

	var required = []string{"page-id"}

	command := &cobra.Command{
		Use:     "get",
		Short:   "get a page",
		Example: "pagesync page get -p <page-id> --content",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			ctx := context.Background()
			client, _, err := newClient(ctx)
			if err != nil {
				logrus.Error(err)
				return
			}
			defer client.Close()

			id, err := resolveID(pageID, "")
			if err != nil {
				logrus.Error(err)
				return
			}

			page, err := client.Notion().Page(ctx, id)
			if err != nil {
				logrus.Error(err)
				return
			}

			printField("ID", page.ID)
			printField("Title", page.Title)
			printField("Author", page.Author.Name+" <"+page.Author.Email+">")
			printField("Created", page.CreatedTime)
			printField("Edited", page.EditedTime)
			printField("URL", page.URL)
			if page.EditorID != "" {
				editor, err := client.Notion().User(ctx, page.EditorID)
				if err != nil {
					logrus.Warnf("failed to resolve editor %s: %v", page.EditorID, err)
				} else {
					printField("Editor", editor.Name)
				}
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Property", "Type", "Values"})
			for _, prop := range page.Properties {
				var values []string
				for _, match := range page.SearchProperty(prop.Type.Name) {
					values = append(values, match.Value)
				}
				table.Append([]string{prop.Type.Name, prop.Type.Kind.Tag(), strings.Join(values, ", ")})
			}
			table.Render()

			printArticles(ctx, client, page)

			if content {
				body, err := page.FetchContent(ctx, client.Notion())
				if err != nil {
					logrus.Error(err)
					return
				}
				printField("Content", "\n"+body)
			}
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "p", "", "page id or url (required)")
	command.Flags().BoolVarP(&content, "content", "c", false, "fetch and render the page body")

	command.Flags().SortFlags = false

	return command
}

func syncPageCmd() *cobra.Command {
	var pageID string

	var required = []string{"page-id"}

	command := &cobra.Command{
		Use:     "sync",
		Short:   "sync a single page",
		Example: "pagesync page sync -p <page-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			ctx := context.Background()
			client, _, err := newClient(ctx)
			if err != nil {
				logrus.Error(err)
				return
			}
			defer client.Close()

			id, err := resolveID(pageID, "")
			if err != nil {
				logrus.Error(err)
				return
			}

			report, err := client.Syncer().SyncPage(ctx, id)
			if report != nil {
				printReport(report)
			}
			if err != nil {
				logrus.Error(err)
			}
		},
	}

	command.Flags().StringVarP(&pageID, "page-id", "p", "", "page id or url (required)")

	return command
}

// printArticles lists the blog rows stored for the page with their tags and categories.
func printArticles(ctx context.Context, client pagesync.Client, page *notion.Page) {
	slug, err := client.Articles().Slug(page)
	if err != nil {
		logrus.Warn(err)
		return
	}

	articles, err := client.Articles().Articles(ctx, slug)
	if errors.Is(err, service.ErrPageNotFound) {
		printField("Article", "not synced")
		return
	}
	if err != nil {
		logrus.Error(err)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"CID", "Slug", "Modified", "Tags", "Category"})
	for _, article := range articles {
		table.Append([]string{
			strconv.FormatUint(uint64(article.Content.ID), 10),
			article.Content.Slug,
			time.Unix(article.Content.Modified, 0).UTC().Format(time.RFC3339),
			metaNames(article.Tags),
			metaNames(article.Categories),
		})
	}
	table.Render()
}

func metaNames(metas []*model.Meta) string {
	names := make([]string, 0, len(metas))
	for _, meta := range metas {
		names = append(names, meta.Name)
	}
	return strings.Join(names, ", ")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emrgen/pagesync"
	"github.com/emrgen/pagesync/internal/config"
	"github.com/emrgen/pagesync/internal/notion"
	"github.com/emrgen/pagesync/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// loadConfig reads the configuration and sets up logging. withNotion also requires the API settings.
func loadConfig(withNotion bool) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	config.SetupLogger(cfg)

	if withNotion {
		if err := cfg.Notion.Validate(); err != nil {
			return nil, fmt.Errorf("notion: %w", err)
		}
	}

	return cfg, nil
}

func newClient(ctx context.Context) (pagesync.Client, *config.Config, error) {
	cfg, err := loadConfig(true)
	if err != nil {
		return nil, nil, err
	}

	client, err := pagesync.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return client, cfg, nil
}

// resolveID normalizes a user supplied id, falling back to fallback when raw is empty.
func resolveID(raw, fallback string) (string, error) {
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		return "", fmt.Errorf("missing id")
	}
	return notion.ParseID(raw)
}

func printField(label, value string) {
	color.Set(color.FgCyan)
	fmt.Print(label)
	color.Unset()
	fmt.Printf(": %s\n", value)
}

func printReport(report *service.Report) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Created", "Updated", "Skipped", "Failed"})
	table.Append([]string{
		strconv.Itoa(report.Created),
		strconv.Itoa(report.Updated),
		strconv.Itoa(report.Skipped),
		strconv.Itoa(report.Failed),
	})
	table.Render()

	for _, err := range report.Errors {
		color.Red("%v", err)
	}
}

func printPages(pages []*notion.Page, slugProperty string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Slug", "Edited", "Archived"})
	for _, page := range pages {
		var slug string
		if matches := page.SearchProperty(slugProperty); len(matches) > 0 {
			slug = matches[0].Value
		}
		table.Append([]string{page.ID, page.Title, slug, page.EditedTime, strconv.FormatBool(page.Archived)})
	}
	table.Render()
}

// checkMissingFlags checks if the required flags are set and returns true if any is missing
func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if !cmd.Flag(required).Changed {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			provided := strings.Join(providedFlags, " ")
			color.Green("provide: %s\n", provided)
		}

		cmd.Println("")
		_ = cmd.Usage()

		return true
	}

	return false
}

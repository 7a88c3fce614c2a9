package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagesync",
	Short: "sync workspace pages into a blog database",
	Example: `pagesync db migrate
pagesync sync -d <database-id>
pagesync page get -p <page-id>
pagesync page sync -p <page-id>
pagesync query -d <database-id> --filter-tag go --sort Name
pagesync watch -d <database-id>`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}

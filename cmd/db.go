package cmd

import (
	"github.com/emrgen/pagesync/internal/config"
	"github.com/emrgen/pagesync/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(false)
			if err != nil {
				logrus.Error(err)
				return
			}

			db, err := config.GetDb(cfg)
			if err != nil {
				logrus.Error(err)
				return
			}

			if err := store.NewGormStore(db).Migrate(); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("database migrated")
		},
	}

	return command
}

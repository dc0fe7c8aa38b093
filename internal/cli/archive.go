package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/varesa/imap-archive/internal/archive"
	"github.com/varesa/imap-archive/internal/config"
	"github.com/varesa/imap-archive/internal/imap"
	"github.com/varesa/imap-archive/internal/imap/sessionmgr"
)

const defaultEnvFile = ".env"

var archiveCmd = &cobra.Command{
	Use:   "archive <server>",
	Short: "Move messages from previous years into Archives/<year> folders",
	Long: "Scans the source mailbox and moves every message whose internal date\n" +
		"falls in a previous calendar year into that year's archive folder,\n" +
		"creating folders as needed. Credentials come from IMAP_USERNAME and\n" +
		"IMAP_PASSWORD; optional settings from the YAML file named by\n" +
		"IMAP_ARCHIVE_CONFIG.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(); err != nil {
			return err
		}

		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}

		if err := settings.Validate(); err != nil {
			return err
		}

		creds, err := config.CredentialsFromEnv()
		if err != nil {
			return err
		}

		addr, err := settings.Addr(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), settings.Summary())

		logger := slog.New(slog.NewJSONHandler(cmd.OutOrStdout(), nil))

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		client := imap.New(
			sessionmgr.WithAddr(addr),
			sessionmgr.WithCreds(creds.Username, creds.Password),
			sessionmgr.WithMailbox(settings.Mailbox),
			sessionmgr.WithStartTLS(settings.TLS == config.TLSStartTLS),
		)
		if err := client.Connect(); err != nil {
			return errors.Wrapf(err, "connect to %s", addr)
		}
		defer client.Close()

		runner, err := archive.NewRunner(
			archive.WithSession(client),
			archive.WithLogger(logger),
			archive.WithBatchSize(settings.BatchSize),
			archive.WithFolderPrefix(settings.FolderPrefix),
		)
		if err != nil {
			return err
		}

		return runner.Run(ctx)
	},
}

func loadEnvFile() error {
	if _, err := os.Stat(defaultEnvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(defaultEnvFile)
}

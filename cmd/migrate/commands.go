package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/umitgh/procurement-system/internal/infrastructure/migration"
	"go.uber.org/zap"
)

var (
	downAll   bool
	assumeYes bool
)

func init() {
	rootCmd.AddCommand(upCmd, downCmd, gotoCmd, versionCmd, forceCmd, createCmd, listCmd)

	downCmd.Flags().BoolVar(&downAll, "all", false, "roll back every migration")
	downCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	forceCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
}

var upCmd = &cobra.Command{
	Use:   "up [N]",
	Short: "Apply all pending migrations, or the next N",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			if len(args) == 0 {
				return m.Up()
			}
			n, err := positiveInt(args[0])
			if err != nil {
				return err
			}
			return m.Steps(n)
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [N]",
	Short: "Roll back the last N migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if downAll && len(args) > 0 {
			return errors.New("--all cannot be combined with a step count")
		}
		n := 1
		if len(args) == 1 {
			var err error
			if n, err = positiveInt(args[0]); err != nil {
				return err
			}
		}
		if downAll && !confirm("Roll back EVERY migration? All procurement data will be dropped.") {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
		return withMigrator(func(m *migration.Migrator) error {
			if downAll {
				return m.Down()
			}
			return m.Steps(-n)
		})
	},
}

var gotoCmd = &cobra.Command{
	Use:   "goto VERSION",
	Short: "Migrate up or down to VERSION",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return withMigrator(func(m *migration.Migrator) error {
			return m.GoTo(uint(version))
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			status, err := m.Version()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case !status.Applied:
				fmt.Fprintln(out, "no migrations applied")
			case status.Dirty:
				fmt.Fprintf(out, "%d (dirty)\n", status.Version)
			default:
				fmt.Fprintln(out, status.Version)
			}
			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force VERSION",
	Short: "Record VERSION as applied without running it",
	Long: `Record VERSION as the current schema version without running any SQL.

Use this after fixing a migration that failed half way and left the
schema marked dirty. Pass -1 to record that nothing is applied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.Atoi(args[0])
		if err != nil || version < -1 {
			return fmt.Errorf("invalid version %q", args[0])
		}
		if !confirm(fmt.Sprintf("Force schema version to %d?", version)) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
		return withMigrator(func(m *migration.Migrator) error {
			return m.Force(version)
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create an empty up/down migration pair",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := migrationsDir
		if dir == "" {
			dir = "migrations"
		}
		mf, err := migration.CreateMigration(dir, strings.Join(args, " "), time.Now())
		if err != nil {
			return err
		}
		log.Info("Migration created", zap.String("up", mf.UpPath), zap.String("down", mf.DownPath))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := migration.ListMigrations(migrationSource())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tDOWN")
		for _, m := range list {
			fmt.Fprintf(w, "%d\t%s\t%t\n", m.Version, m.Name, m.HasDown)
		}
		return w.Flush()
	},
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("step count must be a positive integer, got %q", s)
	}
	return n, nil
}

func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

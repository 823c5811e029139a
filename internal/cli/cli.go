// Package cli builds the command line of the service binaries.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/champlain/campus/internal/bootstrap"
	"github.com/champlain/campus/internal/server"
)

// Options describes one service binary.
type Options struct {
	Service       bootstrap.Service
	DefaultConfig string
	Short         string
	// WithMigrate adds the migrate subcommand.
	WithMigrate bool
}

// NewRootCommand returns the root command of a service binary. Running it
// without a subcommand serves HTTP.
func NewRootCommand(opts Options) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           string(opts.Service),
		Short:         opts.Short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.Service, configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", opts.DefaultConfig, "Path to the YAML configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.Service, configPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load demo data into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, opts.Service)
			if err != nil {
				return err
			}
			n, err := bootstrap.Seed(cmd.Context(), opts.Service, cfg, lgr)
			if err != nil {
				return fmt.Errorf("seeding %s: %w", opts.Service, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d record(s)\n", n)
			return nil
		},
	})

	if opts.WithMigrate {
		root.AddCommand(&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, opts.Service)
				if err != nil {
					return err
				}
				n, err := bootstrap.Migrate(cmd.Context(), cfg, lgr)
				if err != nil {
					return fmt.Errorf("migrating: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", n)
				return nil
			},
		})
	}

	return root
}

func runServe(ctx context.Context, service bootstrap.Service, configPath string) error {
	srv, err := server.NewServer(ctx, service, configPath)
	if err != nil {
		return err
	}
	return srv.Run()
}

// Execute runs the root command with a context cancelled on SIGINT or SIGTERM
// and exits non-zero on error.
func Execute(root *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

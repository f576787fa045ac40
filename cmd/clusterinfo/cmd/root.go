package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Orkogithub/nutanix-cluster-info/internal/config"
)

var (
	// Version information (set at build time via ldflags)
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const longDescription = `Connect to a Nutanix cluster, get some detail about the cluster and its
storage containers and generate a basic PDF or HTML report from those details.

Intended to generate a very high-level and *informal* as-built document.

There is *no warranty* provided with this tool ... AT ALL.
Formal documentation should be generated using best-practice methods that
suit your environment.

Settings are read from flags, CLUSTERINFO_* environment variables and
config.yaml in the config search path. Your name, the cluster address and
the credentials are prompted for when not supplied.`

// NewRootCommand builds the clusterinfo command tree. Running it without a
// subcommand generates the report.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "clusterinfo",
		Short:         "Nutanix cluster as-built report generator",
		Long:          longDescription,
		Args:          cobra.NoArgs,
		RunE:          runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newReportCmd(),
		newFieldsCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

// versionString returns formatted version information
func versionString() string {
	return fmt.Sprintf("clusterinfo %s (commit: %s, built: %s)",
		Version, Commit, BuildDate)
}

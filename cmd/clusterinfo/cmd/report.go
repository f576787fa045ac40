package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Orkogithub/nutanix-cluster-info/internal/logging"
	"github.com/Orkogithub/nutanix-cluster-info/internal/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the cluster report document",
		Long: `Fetch the cluster descriptor and storage containers from Prism and write
a PDF or HTML report named {date}_{time}_{cluster}_cluster.{pdf|html}
into the output directory.`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, args []string) (err error) {
	s, err := startSession(cmd)
	if err != nil {
		return err
	}
	defer func() { s.finish(err) }()

	ctx := logging.WithLogger(cmd.Context(), s.logger)

	fields, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	ctx = logging.AddFields(ctx, zap.String(logging.FieldCluster, fields.ClusterName))

	path, err := report.Render(
		report.Options{
			Format:       s.cfg.Format,
			OutputDir:    s.cfg.OutputDir,
			TemplatePath: s.cfg.TemplatePath,
			PageSize:     s.cfg.PageSize,
			Font:         s.cfg.Font,
			FontSize:     s.cfg.FontSize,
		},
		report.Meta{
			GeneratedAt: time.Now(),
			GeneratedBy: s.cfg.Name,
			LocalUser:   localUser(),
			RunID:       s.runID,
		},
		fields,
	)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("Report written",
		zap.String(logging.FieldOutput, path),
		zap.String(logging.FieldFormat, s.cfg.Format))

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Finished generating report: %s\n", path)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Orkogithub/nutanix-cluster-info/internal/config"
	"github.com/Orkogithub/nutanix-cluster-info/internal/logging"
	"github.com/Orkogithub/nutanix-cluster-info/internal/metrics"
	"github.com/Orkogithub/nutanix-cluster-info/internal/prompt"
	"github.com/Orkogithub/nutanix-cluster-info/models"
	"github.com/Orkogithub/nutanix-cluster-info/pkg/inventory"
	"github.com/Orkogithub/nutanix-cluster-info/sdk"
)

// session is one run: resolved configuration, logger, metrics and run ID.
type session struct {
	cfg      config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
	runID    string
	started  time.Time
}

// startSession resolves the configuration, prompting for missing values,
// and sets up logging and metrics for the run.
func startSession(cmd *cobra.Command) (*session, error) {
	started := time.Now()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	cfg, err = prompt.Complete(cmd.Context(), cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := uuid.NewString()
	logger = logger.With(
		zap.String(logging.FieldRunID, runID),
		zap.String(logging.FieldHost, cfg.Host),
	)
	logger.Debug("Run starting",
		zap.String("version", Version),
		zap.Object(logging.FieldConfig, cfg))

	return &session{
		cfg:      cfg,
		logger:   logger,
		recorder: metrics.NewRecorder(),
		runID:    runID,
		started:  started,
	}, nil
}

// fetch retrieves both Prism documents and normalizes them.
func (s *session) fetch(ctx context.Context) (*inventory.Fields, error) {
	client, err := sdk.NewClient(sdk.ClientConfig{
		Host:           s.cfg.Host,
		Port:           s.cfg.Port,
		Username:       s.cfg.Username,
		Password:       s.cfg.Password,
		Timeout:        s.cfg.Timeout,
		ConnectTimeout: s.cfg.ConnectTimeout,
		Logger:         s.logger,
		Observer:       s.recorder,
	})
	if err != nil {
		return nil, err
	}

	inv, err := client.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}

	fields, err := inventory.Normalize(*inv.Cluster, *inv.Containers)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory fetched",
		zap.String(logging.FieldCluster, fields.ClusterName),
		zap.Int("nodes", fields.NumNodes),
		zap.Int("containers", fields.ContainerCount))

	return fields, nil
}

// finish records the run result and writes the metrics textfile when configured.
func (s *session) finish(err error) {
	s.recorder.ObserveRun(err, time.Since(s.started), time.Now())

	if err != nil {
		s.logger.Debug("Run failed",
			zap.String(logging.FieldErrorKind, models.KindOf(err).String()),
			zap.Error(err))
	}

	if s.cfg.MetricsTextfile != "" {
		if werr := s.recorder.WriteTextfile(s.cfg.MetricsTextfile); werr != nil {
			s.logger.Warn("Failed to write metrics textfile",
				zap.String("path", s.cfg.MetricsTextfile),
				zap.Error(werr))
		}
	}

	_ = s.logger.Sync()
}

// localUser names the operating system account running the tool.
func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

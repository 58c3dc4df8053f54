package cli

import (
	"fmt"

	"github.com/kolah/swagdecl/internal/config"
	"github.com/kolah/swagdecl/internal/loader"
	"github.com/kolah/swagdecl/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session holds what every command needs before doing its own work.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &session{cfg: cfg, logger: logger}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func (s *session) load(cmd *cobra.Command) (*loader.Result, error) {
	result, err := loader.LoadFile(s.cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	s.logger.Debug("document loaded",
		zap.String("spec", s.cfg.Spec),
		zap.String("version", result.Version),
		zap.Int("paths", result.Document.Paths.Len()),
		zap.Int("definitions", result.Document.Definitions.Len()))

	return result, nil
}

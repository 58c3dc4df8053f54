package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kolah/swagdecl/internal/config"
	"github.com/kolah/swagdecl/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func WatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Generate declarations and regenerate them when the document changes",
		RunE:  runWatch,
	}

	config.BindOutputFlags(cmd)
	cmd.Flags().Duration("delay", watch.DefaultDelay, "Quiet period before regenerating after a change")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := generate(cmd, s, generateOptions{}); err != nil {
		return err
	}

	delay, _ := cmd.Flags().GetDuration("delay")
	w, err := watch.New(s.logger, delay)
	if err != nil {
		return err
	}
	if err := w.Add(s.cfg.Spec); err != nil {
		return fmt.Errorf("watching spec: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	cmd.PrintErrf("Watching %s\n", s.cfg.Spec)
	return w.Run(ctx, func(ev watch.Event) {
		mu.Lock()
		defer mu.Unlock()

		s.logger.Info("spec changed, regenerating",
			zap.String("path", ev.Path),
			zap.String("operation", ev.Operation))
		if err := generate(cmd, s, generateOptions{}); err != nil {
			s.logger.Error("regeneration failed", zap.Error(err))
		}
	})
}

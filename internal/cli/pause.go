package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logsurrogate/internal/config"
	"logsurrogate/internal/system"
)

// pause/resume stand in for the GUI when driving the surrogate by hand.

func newPauseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Create pause.flag so a running surrogate waits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.Resolve(opts.dataDir.String())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(paths.DataDir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			f, err := os.OpenFile(paths.PauseFlag, os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("create pause flag: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			system.Logger.Info("paused", "flag", paths.PauseFlag)
			return nil
		},
	}
}

func newResumeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Remove pause.flag so a paused surrogate continues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.Resolve(opts.dataDir.String())
			if err != nil {
				return err
			}
			if err := os.Remove(paths.PauseFlag); err != nil {
				if os.IsNotExist(err) {
					system.Logger.Info("not paused", "flag", paths.PauseFlag)
					return nil
				}
				return fmt.Errorf("remove pause flag: %w", err)
			}
			system.Logger.Info("resumed", "flag", paths.PauseFlag)
			return nil
		},
	}
}

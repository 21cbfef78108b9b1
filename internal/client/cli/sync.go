package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iudanet/studysync/internal/client/workflow"
)

func (c *Cli) syncCommand() *cobra.Command {
	var req workflow.Request
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync an experiment folder with its project repository",
		Long: `Sync finds the project of the experiment (by --project or by the folder of --file),
forks it into your namespace when you cannot push to it, asks for a local folder
when none is known and then pulls and pushes the repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSync(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.ProjectID, "project", "", "project id (namespace/name)")
	cmd.Flags().StringVar(&req.WorkingFile, "file", "", "experiment file inside the project folder")
	return cmd
}

func (c *Cli) runSync(ctx context.Context, req workflow.Request) error {
	if req.WorkingFile != "" {
		abs, err := filepath.Abs(req.WorkingFile)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", req.WorkingFile, err)
		}
		req.WorkingFile = abs
	}

	c.io.Println("=== Synchronization ===")
	code := c.workflow().Run(ctx, req)

	switch code {
	case workflow.CodeSuccess:
		c.io.Println("✓ Synchronization completed successfully!")
		return nil
	case workflow.CodeCancelled:
		c.io.Println("Synchronization cancelled.")
		return nil
	default:
		return ErrSyncFailed
	}
}

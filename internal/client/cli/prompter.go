package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/iudanet/studysync/internal/client/workflow"
	"github.com/iudanet/studysync/internal/config"
	"github.com/iudanet/studysync/internal/models"
)

// prompter asks the user through the CLI terminal.
type prompter struct {
	cli *Cli
}

func (p *prompter) Notify(msg string) {
	p.cli.io.Println(msg)
}

// Login asks for a token or a known username; an empty answer declines.
func (p *prompter) Login(ctx context.Context) (string, error) {
	p.cli.io.Println("You need to log in to the platform to continue.")
	value, err := p.cli.io.ReadPassword("Token or username (empty to cancel): ")
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if value == "" {
		return "", nil
	}
	return p.cli.login(ctx, value)
}

func (p *prompter) ChooseFolder(_ context.Context, project *models.Project) (string, error) {
	p.cli.io.Printf("Project %s has no local folder yet.\n", project.LocalID)
	dir, err := p.cli.io.ReadInput("Local folder (empty to skip): ")
	if err != nil {
		return "", fmt.Errorf("failed to read folder: %w", err)
	}
	if dir == "" {
		return "", nil
	}
	abs, err := filepath.Abs(config.ExpandHome(dir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve folder: %w", err)
	}
	return abs, nil
}

var recoveryChoices = []workflow.RecoveryChoice{
	workflow.RecoveryRecreate,
	workflow.RecoveryRedirect,
	workflow.RecoveryForgetHistory,
	workflow.RecoveryCancel,
}

func (p *prompter) ChooseRecovery(_ context.Context, project *models.Project) (workflow.RecoveryChoice, error) {
	p.cli.io.Printf("The remote repository of %s no longer exists.\n", project.LocalID)
	p.cli.io.Println("  1) recreate it and push the local copy")
	p.cli.io.Println("  2) point the local copy at another repository")
	p.cli.io.Println("  3) forget the local git history")
	p.cli.io.Println("  4) cancel")
	answer, err := p.cli.io.ReadInput("Choice [4]: ")
	if err != nil {
		return workflow.RecoveryCancel, fmt.Errorf("failed to read choice: %w", err)
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(recoveryChoices) {
		return workflow.RecoveryCancel, nil
	}
	return recoveryChoices[n-1], nil
}

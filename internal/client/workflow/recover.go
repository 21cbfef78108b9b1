package workflow

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/iudanet/studysync/internal/models"
)

// RecoveryChoice is what to do when a project's remote repository is gone.
type RecoveryChoice int

const (
	RecoveryCancel        RecoveryChoice = iota
	RecoveryRecreate                     // создать новый удаленный репозиторий и отправить в него локальную копию
	RecoveryRedirect                     // связать локальную копию с другим существующим репозиторием
	RecoveryForgetHistory                // забыть локальную историю git
)

func (c RecoveryChoice) String() string {
	switch c {
	case RecoveryRecreate:
		return "recreate"
	case RecoveryRedirect:
		return "redirect"
	case RecoveryForgetHistory:
		return "forget-history"
	default:
		return "cancel"
	}
}

func (w *Workflow) recoverMissingRemote(ctx context.Context, project *models.Project, folder string) Code {
	choice, err := w.prompter.ChooseRecovery(ctx, project)
	if err != nil {
		w.logger.Warn("Failed to choose recovery", "error", err)
		choice = RecoveryCancel
	}

	code, err := w.Recover(ctx, project, choice, folder)
	if err != nil {
		w.prompter.Notify(fmt.Sprintf("Could not restore %s: %v", project.LocalID, err))
	}
	return code
}

// Recover applies choice to a project whose remote repository no longer exists.
// Recreate makes a new repository in the user's namespace, relinks the project
// and retries the sync once.
func (w *Workflow) Recover(ctx context.Context, project *models.Project, choice RecoveryChoice, folder string) (Code, error) {
	w.logger.Info("Recovering missing remote", "project", project.LocalID, "choice", choice)

	switch choice {
	case RecoveryCancel:
		w.enter(StateCancelled)
		return CodeCancelled, nil
	case RecoveryRedirect, RecoveryForgetHistory:
		w.enter(StateFailed)
		return CodeFailure, fmt.Errorf("%s: %w", choice, ErrNotSupported)
	case RecoveryRecreate:
	default:
		return CodeFailure, fmt.Errorf("unknown recovery choice %d", choice)
	}

	if w.repos == nil {
		w.enter(StateFailed)
		return CodeFailure, ErrNoRepoHost
	}

	repo, err := w.repos.CreateProject(ctx, path.Base(project.LocalID))
	if err != nil {
		w.enter(StateFailed)
		return CodeFailure, err
	}

	oldID := project.LocalID
	project.LocalID = repo.PathWithNamespace
	project.ApplyRepo(repo)
	if project.PermissionLevel == nil || *project.PermissionLevel < models.PermissionOwner {
		owner := models.PermissionOwner
		project.PermissionLevel = &owner
	}
	if oldID != project.LocalID {
		if err := w.projects.Delete(oldID); err != nil {
			w.logger.Warn("Failed to drop old project entry", "project", oldID, "error", err)
		}
	}

	w.enter(StateSyncing)
	result, err := w.SyncProject(ctx, project, folder)
	if result != models.SyncSuccess {
		if err == nil {
			err = errors.New("sync failed")
		}
		w.enter(StateFailed)
		return CodeFailure, err
	}
	w.enter(StateDone)
	return CodeSuccess, nil
}

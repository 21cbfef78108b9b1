// Package workflow drives a project sync from a working file to a pushed
// repository: folder check, login, project resolution, fork, folder choice, sync.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	clientapi "github.com/iudanet/studysync/internal/client/api"
	"github.com/iudanet/studysync/internal/client/session"
	"github.com/iudanet/studysync/internal/client/storage"
	"github.com/iudanet/studysync/internal/client/vcs"
	"github.com/iudanet/studysync/internal/config"
	"github.com/iudanet/studysync/internal/models"
	"github.com/iudanet/studysync/pkg/api"
)

// Code is the tri-state outcome of Run.
type Code int

const (
	CodeCancelled Code = -1 // пользователь отказался или папка запрещена
	CodeFailure   Code = 0
	CodeSuccess   Code = 1
)

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeCancelled:
		return "cancelled"
	default:
		return "failure"
	}
}

// State is a step of the sync workflow.
type State string

const (
	StateStart          State = "START"
	StateFolderCheck    State = "FOLDER_CHECK"
	StateLoginCheck     State = "LOGIN_CHECK"
	StateProjectResolve State = "PROJECT_RESOLVE"
	StateForkIfNeeded   State = "FORK_IF_NEEDED"
	StateFolderSelect   State = "FOLDER_SELECT"
	StateSyncing        State = "SYNCING"
	StateDone           State = "DONE"
	StateCancelled      State = "CANCELLED"
	StateFailed         State = "FAILED"
)

var (
	// ErrNoProject возвращается синхронизацией без проекта
	ErrNoProject = errors.New("no project to sync")

	// ErrNotSupported возвращается нереализованными вариантами восстановления
	ErrNotSupported = errors.New("not supported yet")

	// ErrNoRepoHost означает, что git-хостинг для форка не настроен
	ErrNoRepoHost = errors.New("git hosting is not configured")
)

//go:generate moq -out workflow_mock.go . Prompter VCS RepoHost

// Prompter is the user-facing side of the workflow.
type Prompter interface {
	// Notify показывает сообщение пользователю
	Notify(msg string)

	// Login просит пользователя войти; "" означает отказ
	Login(ctx context.Context) (string, error)

	// ChooseFolder просит выбрать локальный каталог проекта; "" означает, что каталог не выбран
	ChooseFolder(ctx context.Context, project *models.Project) (string, error)

	// ChooseRecovery спрашивает, что делать, если удаленного репозитория больше нет
	ChooseRecovery(ctx context.Context, project *models.Project) (RecoveryChoice, error)
}

// VCS syncs a working copy with a remote repository.
type VCS interface {
	Sync(ctx context.Context, remoteURL, dir string) error
}

// RepoHost is the git hosting side used for permissions, forks and re-creation.
type RepoHost interface {
	GetProject(ctx context.Context, pathWithNamespace string) (*api.RepoProject, error)
	ForkProject(ctx context.Context, pathWithNamespace, namespace string) (*api.RepoProject, error)
	CreateProject(ctx context.Context, name string) (*api.RepoProject, error)
}

// Sessions gives access to the active session.
type Sessions interface {
	Current(ctx context.Context) *session.Session
}

// Request describes what to sync.
type Request struct {
	Project     *models.Project // может быть nil
	ProjectID   string          // локальный id, если Project не передан
	WorkingFile string          // файл, с которым работает пользователь
}

// Config wires a Workflow.
type Config struct {
	Sessions      Sessions
	Projects      storage.ProjectStore
	RepoHost      RepoHost // может быть nil: форк и восстановление недоступны
	VCS           VCS
	Prompter      Prompter
	Logger        *slog.Logger
	ForkNamespace string // пусто = username текущей сессии
	HomeDir       string // пусто = os.UserHomeDir
}

// Workflow runs project syncs.
type Workflow struct {
	sessions      Sessions
	projects      storage.ProjectStore
	repos         RepoHost
	vcs           VCS
	prompter      Prompter
	logger        *slog.Logger
	forkNamespace string
	homeDir       string
}

// New создает workflow синхронизации
func New(cfg Config) *Workflow {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	home := cfg.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return &Workflow{
		sessions:      cfg.Sessions,
		projects:      cfg.Projects,
		repos:         cfg.RepoHost,
		vcs:           cfg.VCS,
		prompter:      cfg.Prompter,
		logger:        logger,
		forkNamespace: cfg.ForkNamespace,
		homeDir:       home,
	}
}

var nowUTC = func() time.Time { return time.Now().UTC() }

func (w *Workflow) enter(state State) {
	w.logger.Debug("sync workflow", "state", state)
}

// Run executes the workflow. It never returns an error: every path ends in a
// Code and user-facing messages go through the prompter.
func (w *Workflow) Run(ctx context.Context, req Request) Code {
	w.enter(StateStart)

	w.enter(StateFolderCheck)
	if w.disallowedFolder(req.WorkingFile) {
		w.prompter.Notify(fmt.Sprintf(
			"Projects can't be synced from %s. Move the experiment into its own folder and try again.",
			filepath.Dir(req.WorkingFile)))
		w.enter(StateFailed)
		return CodeCancelled
	}

	w.enter(StateLoginCheck)
	project := req.Project
	if project == nil {
		project = w.projectFromContext(ctx, req)
	}
	if project == nil {
		if !w.ensureLogin(ctx) {
			w.enter(StateCancelled)
			return CodeCancelled
		}
		project = w.projectFromContext(ctx, req)
	}

	w.enter(StateProjectResolve)
	if project == nil {
		w.prompter.Notify("No project is associated with this experiment. Create or choose a project first.")
		w.enter(StateFailed)
		return CodeFailure
	}
	w.refreshPermissions(ctx, project)

	w.enter(StateForkIfNeeded)
	if models.NeedsFork(project.PermissionLevel) {
		if !w.ensureLogin(ctx) {
			w.enter(StateCancelled)
			return CodeCancelled
		}
		fork, err := w.fork(ctx, project)
		if err != nil {
			w.logger.Warn("Failed to fork project", "project", project.LocalID, "error", err)
			w.prompter.Notify(fmt.Sprintf("Could not fork %s: %v", project.LocalID, err))
			w.enter(StateFailed)
			return CodeFailure
		}
		project = fork
	}

	w.enter(StateFolderSelect)
	folder := project.LocalFolder
	if folder == "" {
		chosen, err := w.prompter.ChooseFolder(ctx, project)
		if err != nil {
			w.logger.Warn("Failed to choose folder", "error", err)
		}
		// без каталога синхронизация все равно запускается и завершится ошибкой VCS
		folder = chosen
	}

	w.enter(StateSyncing)
	result, err := w.SyncProject(ctx, project, folder)
	if errors.Is(err, vcs.ErrRemoteNotFound) {
		return w.recoverMissingRemote(ctx, project, folder)
	}
	if result != models.SyncSuccess {
		w.prompter.Notify(fmt.Sprintf("Sync of %s failed: %v", project.LocalID, err))
		w.enter(StateFailed)
		return CodeFailure
	}

	w.enter(StateDone)
	return CodeSuccess
}

// SyncProject syncs project with folder. On success the folder and time are
// recorded on the project and the project store is saved; a failed save is
// logged and does not fail the sync.
func (w *Workflow) SyncProject(ctx context.Context, project *models.Project, folder string) (models.SyncResult, error) {
	if project == nil {
		return models.SyncFailure, ErrNoProject
	}

	w.logger.Info("Starting project sync", "project", project.LocalID, "folder", folder)
	if err := w.vcs.Sync(ctx, project.RepoURL, folder); err != nil {
		w.logger.Warn("Project sync failed", "project", project.LocalID, "error", err)
		return models.SyncFailure, err
	}

	now := nowUTC()
	project.LocalFolder = folder
	project.LastSync = &now

	if err := w.projects.Set(project.LocalID, *project); err != nil {
		w.logger.Warn("Failed to store project after sync", "project", project.LocalID, "error", err)
	} else if err := w.projects.Save(); err != nil {
		w.logger.Warn("Failed to save projects after sync", "error", err)
	}

	w.logger.Info("Project sync completed", "project", project.LocalID)
	return models.SyncSuccess, nil
}

// ensureLogin returns true when the active session is authenticated,
// prompting the user to log in if it is not.
func (w *Workflow) ensureLogin(ctx context.Context) bool {
	if w.sessions.Current(ctx).Authenticated() {
		return true
	}
	username, err := w.prompter.Login(ctx)
	if err != nil {
		w.logger.Warn("Login failed", "error", err)
		return false
	}
	if username == "" {
		return false
	}
	return w.sessions.Current(ctx).Authenticated()
}

// projectFromContext ищет проект по id или по каталогу рабочего файла
func (w *Workflow) projectFromContext(ctx context.Context, req Request) *models.Project {
	if req.ProjectID != "" {
		if p, err := w.projects.Get(req.ProjectID); err == nil {
			return &p
		}
		if w.repos != nil {
			repo, err := w.repos.GetProject(ctx, req.ProjectID)
			if clientapi.IsNotFound(err) {
				w.logger.Debug("Project not found on git host", "project", req.ProjectID)
				return nil
			}
			if err != nil {
				w.logger.Warn("Failed to look up project on git host", "project", req.ProjectID, "error", err)
				w.prompter.Notify(fmt.Sprintf("Could not look up %s on the git host: %v", req.ProjectID, err))
				return nil
			}
			p := &models.Project{LocalID: repo.PathWithNamespace, Title: repo.Name}
			p.ApplyRepo(repo)
			return p
		}
		return nil
	}

	if req.WorkingFile == "" {
		return nil
	}
	dir := filepath.Clean(filepath.Dir(req.WorkingFile))
	keys, err := w.projects.Keys()
	if err != nil {
		w.logger.Warn("Failed to list known projects", "error", err)
		return nil
	}
	for _, k := range keys {
		p, err := w.projects.Get(k)
		if err != nil || p.LocalFolder == "" {
			continue
		}
		if isWithin(dir, filepath.Clean(p.LocalFolder)) {
			return &p
		}
	}
	return nil
}

func isWithin(dir, root string) bool {
	if dir == root {
		return true
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// refreshPermissions заполняет уровень доступа, если он неизвестен
func (w *Workflow) refreshPermissions(ctx context.Context, project *models.Project) {
	if w.repos == nil || project.PermissionLevel != nil {
		return
	}
	repo, err := w.repos.GetProject(ctx, project.LocalID)
	if err != nil {
		w.logger.Warn("Failed to read repository permissions", "project", project.LocalID, "error", err)
		return
	}
	project.ApplyRepo(repo)
}

// fork copies the project into the user's namespace and records the fork.
// The fork is a new study-to-be: platform fields and local folder are not carried over.
func (w *Workflow) fork(ctx context.Context, project *models.Project) (*models.Project, error) {
	if w.repos == nil {
		return nil, ErrNoRepoHost
	}
	namespace := w.forkNamespace
	if namespace == "" {
		namespace = w.sessions.Current(ctx).Username()
	}

	repo, err := w.repos.ForkProject(ctx, project.LocalID, namespace)
	if err != nil {
		return nil, err
	}

	fork := &models.Project{
		LocalID:          repo.PathWithNamespace,
		Title:            project.Title,
		InternalName:     project.InternalName,
		Description:      project.Description,
		ExternalStudyURL: project.ExternalStudyURL,
		CompletionCode:   project.CompletionCode,
		ParticipantCount: project.ParticipantCount,
		DurationMinutes:  project.DurationMinutes,
		Reward:           project.Reward,
	}
	fork.ApplyRepo(repo)
	if fork.PermissionLevel == nil {
		owner := models.PermissionOwner
		fork.PermissionLevel = &owner
	}

	if err := w.projects.Set(fork.LocalID, *fork); err != nil {
		w.logger.Warn("Failed to store fork", "project", fork.LocalID, "error", err)
	} else if err := w.projects.Save(); err != nil {
		w.logger.Warn("Failed to save projects after fork", "error", err)
	}

	w.logger.Info("Forked project", "from", project.LocalID, "to", fork.LocalID)
	return fork, nil
}

// disallowedFolder reports whether file sits directly in Desktop or My Documents.
func (w *Workflow) disallowedFolder(file string) bool {
	if file == "" || w.homeDir == "" {
		return false
	}
	dir := filepath.Clean(filepath.Dir(config.ExpandHomeDir(file, w.homeDir)))
	for _, name := range []string{"Desktop", "My Documents"} {
		if strings.EqualFold(dir, filepath.Join(w.homeDir, name)) {
			return true
		}
	}
	return false
}

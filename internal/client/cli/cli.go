// Package cli implements the studysync command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/studysync/internal/client/api"
	"github.com/iudanet/studysync/internal/client/githost"
	"github.com/iudanet/studysync/internal/client/iocli"
	"github.com/iudanet/studysync/internal/client/session"
	"github.com/iudanet/studysync/internal/client/storage"
	"github.com/iudanet/studysync/internal/client/storage/jsonfile"
	"github.com/iudanet/studysync/internal/client/vcs"
	"github.com/iudanet/studysync/internal/client/workflow"
	"github.com/iudanet/studysync/internal/config"
)

// ErrSyncFailed is returned by the sync command when the workflow ends in failure.
var ErrSyncFailed = errors.New("sync failed")

type globalFlags struct {
	configPath string
	apiURL     string
	logLevel   string
}

type Cli struct {
	io       iocli.IO
	stderr   io.Writer
	logger   *slog.Logger
	manager  *session.Manager
	users    storage.UserStore
	projects storage.ProjectStore
	repos    *githost.Client // nil, если токен git-хостинга не задан
	vcs      workflow.VCS
	flags    globalFlags
	cfgPath  string
	cfg      config.Client
}

// New создает CLI поверх терминала io
func New(io iocli.IO) *Cli {
	return &Cli{io: io, stderr: os.Stderr}
}

// Command builds the root command.
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "studysync",
		Short: "Create, publish and sync studies on a participant recruitment platform",
		Long: `studysync connects an experiment folder to a study on the recruitment
platform and to its git repository.

Settings are read from config.yaml in the user config dir (see 'studysync config init'),
STUDYSYNC_* environment variables and a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Annotations[annotationConfigOptional] == "true")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(c.io)
	root.SetErr(c.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default {user config dir}/studysync/config.yaml)")
	pf.StringVar(&c.flags.apiURL, "api-url", "", "platform API URL")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.usersCommand(),
		c.priceCommand(),
		c.projectCommand(),
		c.syncCommand(),
		c.searchCommand(),
		c.authURLCommand(),
		c.configCommand(),
	)
	return root
}

// annotationConfigOptional marks commands that run without an existing --config file.
const annotationConfigOptional = "config-optional"

// setup загружает конфигурацию и собирает зависимости команд
func (c *Cli) setup(configOptional bool) error {
	loadPath := c.flags.configPath
	if configOptional && loadPath != "" {
		if _, err := os.Stat(loadPath); errors.Is(err, os.ErrNotExist) {
			loadPath = ""
		}
	}
	cfg, err := config.LoadClient(loadPath)
	if err != nil {
		return err
	}
	if c.flags.apiURL != "" {
		cfg.Platform.APIURL = c.flags.apiURL
	}
	if c.flags.logLevel != "" {
		cfg.Log.Level = c.flags.logLevel
	}
	c.cfg = cfg

	c.cfgPath = c.flags.configPath
	if c.cfgPath == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		c.cfgPath = filepath.Join(dir, config.FileName)
	}

	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	c.users = jsonfile.NewUserStore(cfg.UsersPath())
	c.projects = jsonfile.NewProjectStore(cfg.ProjectsPath())

	timeout := time.Duration(cfg.Platform.TimeoutSeconds) * time.Second
	httpClient := api.NewHTTPClient(timeout)
	deps := session.Deps{
		NewClient: func(token string) session.Platform {
			return api.NewClient(cfg.Platform.APIURL, cfg.Platform.ClientURL, token,
				api.WithHTTPClient(httpClient),
				api.WithMaximumAllowedTime(cfg.Platform.MaximumAllowedTime),
				api.WithLogger(c.logger),
			)
		},
		Users:      c.users,
		Projects:   c.projects,
		Logger:     c.logger,
		RememberMe: cfg.Session.RememberMe,
	}
	if cfg.GitHost.Token != "" {
		c.repos = githost.NewClient(cfg.GitHost.APIURL, cfg.GitHost.Token, timeout, c.logger)
		deps.RepoHost = c.repos
	}

	c.manager = session.NewManager(deps, session.ManagerOptions{
		InitialToken: cfg.Session.Token,
		LastUser:     cfg.Session.LastUser,
		LoginURL:     cfg.Platform.LoginURL,
	})

	if c.vcs == nil {
		var knownHosts []string
		if cfg.GitHost.KnownHostsPath != "" {
			knownHosts = []string{cfg.GitHost.KnownHostsPath}
		}
		c.vcs = vcs.New(vcs.Options{
			Logger:     c.logger,
			Token:      cfg.GitHost.Token,
			SSHKeyPath: cfg.GitHost.SSHKeyPath,
			KnownHosts: knownHosts,
		})
	}
	return nil
}

// workflow собирает workflow синхронизации поверх текущих зависимостей
func (c *Cli) workflow() *workflow.Workflow {
	wcfg := workflow.Config{
		Sessions:      c.manager,
		Projects:      c.projects,
		VCS:           c.vcs,
		Prompter:      &prompter{cli: c},
		Logger:        c.logger,
		ForkNamespace: c.cfg.GitHost.Namespace,
	}
	if c.repos != nil {
		wcfg.RepoHost = c.repos
	}
	return workflow.New(wcfg)
}

// current returns the active session, failing when nobody is logged in.
func (c *Cli) current(ctx context.Context) (*session.Session, error) {
	s := c.manager.Current(ctx)
	if !s.Authenticated() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("%w. Run 'studysync login' first", err)
		}
		return nil, fmt.Errorf("%w. Run 'studysync login' first", session.ErrNoClient)
	}
	return s, nil
}

// rememberUser persists the last logged-in user so the next run starts with that session.
func (c *Cli) rememberUser(username string) {
	c.cfg.Session.LastUser = username
	err := config.UpdateClientFile(c.cfgPath, func(cfg *config.Client) {
		cfg.Session.LastUser = username
	})
	if err != nil {
		c.logger.Warn("Failed to save config", "path", c.cfgPath, "error", err)
	}
}

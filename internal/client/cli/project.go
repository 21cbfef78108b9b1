package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/studysync/internal/models"
	"github.com/iudanet/studysync/internal/validation"
)

func (c *Cli) projectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create, inspect and publish studies",
	}
	cmd.AddCommand(c.projectCreateCommand(), c.projectShowCommand(), c.projectPublishCommand())
	return cmd
}

func (c *Cli) projectCreateCommand() *cobra.Command {
	form := validation.DefaultStudyForm()
	var strict bool

	cmd := &cobra.Command{
		Use:   "create <namespace/name>",
		Short: "Create a study on the platform for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := validation.ParseStudyForm(form, strict)
			if err != nil {
				return err
			}
			s, err := c.current(cmd.Context())
			if err != nil {
				return err
			}

			project, err := s.CreateProject(cmd.Context(), args[0], draft)
			if err != nil {
				if project == nil {
					return fmt.Errorf("failed to create study: %w", err)
				}
				c.logger.Warn("Study created but not saved locally", "error", err)
			}

			c.io.Println("✓ Study created")
			c.printProject(project)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Title, "title", form.Title, "public study title")
	f.StringVar(&form.InternalName, "internal-name", form.InternalName, "internal name (default: title)")
	f.StringVar(&form.Description, "description", form.Description, "study description")
	f.StringVar(&form.ExternalStudyURL, "url", form.ExternalStudyURL, "external study URL")
	f.StringVar(&form.CompletionCode, "code", form.CompletionCode, "completion code")
	f.StringVar(&form.Participants, "participants", form.Participants, "number of participants")
	f.StringVar(&form.Duration, "duration", form.Duration, "estimated duration in minutes")
	f.StringVar(&form.Reward, "reward", form.Reward, "reward per participant")
	f.BoolVar(&strict, "strict", false, "reject malformed numbers instead of using zero")
	return cmd
}

func (c *Cli) projectShowCommand() *cobra.Command {
	var (
		refresh bool
		asJSON  bool
		field   string
	)
	cmd := &cobra.Command{
		Use:   "show <namespace/name>",
		Short: "Show a known project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := c.loadProject(cmd.Context(), args[0], refresh)
			if err != nil {
				return err
			}
			if field != "" {
				v, err := project.Lookup(field)
				if err != nil {
					return err
				}
				c.io.Println(v)
				return nil
			}
			if asJSON {
				data, err := json.MarshalIndent(project.ToStudyMap(), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode study: %w", err)
				}
				c.io.Println(string(data))
				return nil
			}
			c.printProject(project)
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-read the study from the platform")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the platform view of the study as JSON")
	cmd.Flags().StringVar(&field, "field", "", "print a single field (local, extra or remote)")
	return cmd
}

func (c *Cli) loadProject(ctx context.Context, localID string, refresh bool) (*models.Project, error) {
	s := c.manager.Current(ctx)
	if !refresh {
		project, err := s.GetProject(ctx, localID)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", localID, err)
		}
		return project, nil
	}

	if _, err := c.current(ctx); err != nil {
		return nil, err
	}
	project, err := s.RefreshProject(ctx, localID)
	if err != nil && project == nil {
		return nil, fmt.Errorf("failed to refresh %s: %w", localID, err)
	}
	if err != nil {
		c.logger.Warn("Project refreshed but not saved locally", "error", err)
	}
	return project, nil
}

func (c *Cli) projectPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <namespace/name>",
		Short: "Publish the study of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.current(cmd.Context())
			if err != nil {
				return err
			}
			project, err := s.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("project %s: %w", args[0], err)
			}

			published, err := s.Publish(cmd.Context(), project)
			if err != nil && published == nil {
				return fmt.Errorf("failed to publish %s: %w", args[0], err)
			}
			if err != nil {
				c.logger.Warn("Study published but not saved locally", "error", err)
			}

			c.io.Printf("✓ Study is %s\n", published.Status)
			if published.URL != "" {
				c.io.Printf("Submissions: %s\n", published.SubmissionsURL())
			}
			return nil
		},
	}
}

func (c *Cli) printProject(p *models.Project) {
	c.io.Printf("Project:      %s\n", p.LocalID)
	c.io.Printf("Title:        %s\n", p.Title)
	if p.Created() {
		c.io.Printf("Study ID:     %d\n", *p.RemoteID)
	}
	if p.Status != "" {
		c.io.Printf("Status:       %s\n", p.Status)
	}
	if p.URL != "" {
		c.io.Printf("URL:          %s\n", p.URL)
	}
	c.io.Printf("Participants: %d\n", p.ParticipantCount)
	c.io.Printf("Duration:     %d min\n", p.DurationMinutes)
	c.io.Printf("Reward:       %s\n", models.FormatPrice(p.Reward, c.currencyCode()))
	if p.RepoURL != "" {
		c.io.Printf("Repository:   %s\n", p.RepoURL)
	}
	if p.LocalFolder != "" {
		c.io.Printf("Folder:       %s\n", p.LocalFolder)
	}
	if p.LastSync != nil {
		c.io.Printf("Last sync:    %s\n", p.LastSync.Local().Format(time.DateTime))
	}
}

// currencyCode returns the currency of the last user, read from the local store only.
func (c *Cli) currencyCode() string {
	if c.cfg.Session.LastUser == "" {
		return ""
	}
	cred, err := c.users.Get(c.cfg.Session.LastUser)
	if err != nil {
		return ""
	}
	return cred.CurrencyCode
}

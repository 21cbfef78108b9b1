package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the git hosting service",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "users <query>",
		Short: "Search users to share a project with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.manager.Current(cmd.Context()).FindUsers(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, u := range users {
				c.io.Printf("%s\t%s\t%s\n", u.Username, u.Name, u.WebURL)
			}
			return nil
		},
	}, c.searchNamespacesCommand())
	return cmd
}

func (c *Cli) searchNamespacesCommand() *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "namespaces <query>",
		Short: "Search user and group namespaces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.manager.Current(cmd.Context())
			if exact {
				ns, err := s.GetNamespace(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c.io.Printf("%s\t%s\n", ns.FullPath, ns.Kind)
				return nil
			}

			namespaces, err := s.FindNamespaces(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, ns := range namespaces {
				c.io.Printf("%s\t%s\n", ns.FullPath, ns.Kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "print only the namespace whose path matches exactly")
	return cmd
}

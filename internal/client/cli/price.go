package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iudanet/studysync/internal/validation"
)

func (c *Cli) priceCommand() *cobra.Command {
	var (
		participants string
		reward       string
		strict       bool
	)
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Show the total cost of a study",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := validation.ParseCount("participants", participants, strict)
			if err != nil {
				return err
			}
			r, err := validation.ParseReward(reward, strict)
			if err != nil {
				return err
			}

			s, err := c.current(cmd.Context())
			if err != nil {
				return err
			}
			price := s.CalculateTotalPrice(cmd.Context(), n, r)
			if price == "" {
				return fmt.Errorf("price is not available right now")
			}
			c.io.Printf("Total cost: %s\n", price)
			return nil
		},
	}
	cmd.Flags().StringVar(&participants, "participants", strconv.Itoa(validation.DefaultParticipants), "number of participants")
	cmd.Flags().StringVar(&reward, "reward", validation.DefaultReward, "reward per participant")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject malformed numbers instead of using zero")
	return cmd
}

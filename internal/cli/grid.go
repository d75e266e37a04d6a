package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/grid"
)

// gridCommand creates the grid command.
func (c *CLI) gridCommand() *cobra.Command {
	square := true

	cmd := &cobra.Command{
		Use:   "grid <n>",
		Short: "Print the grid shape used to tile n images",
		Example: `  plotkit grid 7
  plotkit grid 6 --square=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidArgument, "n must be an integer, got %q", args[0])
			}
			shape, err := grid.For(n, square)
			if err != nil {
				return err
			}
			printKeyValue("shape", shape.String())
			printKeyValue("cells", fmt.Sprint(shape.Cells()))
			printKeyValue("unused", fmt.Sprint(shape.Unused(n)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&square, "square", square, "force rows == cols")
	return cmd
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) simCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim FILE PATTERN",
		Short: "Evaluate the outputs of a circuit on an input pattern",
		Long: `Sim builds the diagrams of a circuit and evaluates every output on PATTERN,
a string of 0 and 1 giving the value of the inputs, then of the current
state of registers, in order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			for _, id := range s.net.Outputs() {
				v, err := s.m.BDDByID(id).EvalCube(args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", s.net.Gate(id).Name, v)
			}
			return nil
		},
	}
	return cmd
}

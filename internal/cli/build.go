// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var errRoundTrip = errors.New("fdd conversion is not invertible")

func (c *CLI) buildCommand() *cobra.Command {
	var fdd bool
	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Build the diagrams of the outputs and registers of a circuit",
		Long: `Build reads an AIGER file (ASCII when the extension is .aag, binary otherwise)
and prints the number of BDD nodes of every output and next-state function.
With --fdd, every diagram is also converted to an FDD and back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if fdd {
				fmt.Fprintln(w, "GATE\tBDD\tFDD")
			} else {
				fmt.Fprintln(w, "GATE\tBDD")
			}
			ids, names := s.gates()
			for i, id := range ids {
				n := s.m.BDDByID(id)
				if !fdd {
					fmt.Fprintf(w, "%s\t%d\n", names[i], n.NodeCount())
					continue
				}
				f := s.m.Bdd2Fdd(n)
				if back := s.m.Fdd2Bdd(f); !back.Equal(n) {
					return fmt.Errorf("%w: gate %s", errRoundTrip, names[i])
				}
				s.m.AddFDD(id, f)
				c.Logger.Debug("converted", "gate", names[i], "bdd", n.NodeCount(), "fdd", f.NodeCount())
				fmt.Fprintf(w, "%s\t%d\t%d\n", names[i], n.NodeCount(), f.NodeCount())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&fdd, "fdd", false, "also build the FDD of every diagram")
	return cmd
}

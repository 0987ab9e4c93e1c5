// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"
)

type drawOpts struct {
	gate string // name of the output to draw, first output if empty
	fdd  bool   // draw the FDD instead of the BDD
	svg  bool   // render to SVG instead of writing DOT
}

func (c *CLI) drawCommand() *cobra.Command {
	var opts drawOpts
	cmd := &cobra.Command{
		Use:   "draw FILE OUTPUT",
		Short: "Draw the diagram of an output of a circuit",
		Long: `Draw writes the diagram of one output of the circuit in FILE to OUTPUT, in
DOT format or, with --svg, as an SVG image. Use "-" for the standard output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			id, err := s.output(opts.gate)
			if err != nil {
				return err
			}
			name := s.net.Gate(id).Name
			var dot bytes.Buffer
			n := s.m.BDDByID(id)
			if opts.fdd {
				err = s.m.WriteFddDot(&dot, name, s.m.Bdd2Fdd(n))
			} else {
				err = s.m.WriteDot(&dot, name, n)
			}
			if err != nil {
				return err
			}
			out := dot.Bytes()
			if opts.svg {
				if out, err = renderSVG(cmd.Context(), out); err != nil {
					return err
				}
			}
			c.Logger.Debug("draw", "gate", name, "nodes", n.NodeCount(), "svg", opts.svg)
			if args[1] == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(args[1], out, 0o644)
		},
	}
	cmd.Flags().StringVar(&opts.gate, "gate", "", "name of the output to draw")
	cmd.Flags().BoolVar(&opts.fdd, "fdd", false, "draw the functional decision diagram")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render the diagram to SVG with Graphviz")
	return cmd
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

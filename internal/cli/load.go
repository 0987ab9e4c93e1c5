// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"fmt"

	"github.com/dalzilio/bfdd"
	"github.com/dalzilio/bfdd/netlist"
)

// session is the result of reading a circuit and building all its diagrams.
type session struct {
	net     *netlist.Netlist
	m       *bfdd.Manager
	builder *netlist.Builder
}

// load reads an AIGER file and builds the BDD of every output and register.
func (c *CLI) load(file string) (*session, error) {
	net, err := netlist.ReadAigerFile(file)
	if err != nil {
		return nil, err
	}
	nin := max(netlist.Supports(net), c.config.Supports)
	// sizes below 7, including the zero value, keep the defaults
	m, err := bfdd.New(nin,
		bfdd.Buckets(c.config.Buckets),
		bfdd.Cachesize(c.config.Cachesize),
		bfdd.Logger(c.Logger))
	if err != nil {
		return nil, err
	}
	b, err := netlist.NewBuilder(m, net, c.Logger)
	if err != nil {
		return nil, err
	}
	if err := b.BuildAll(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	c.Logger.Info("circuit built", "file", file, "inputs", len(net.Inputs()), "outputs", len(net.Outputs()), "registers", len(net.Registers()))
	return &session{net: net, m: m, builder: b}, nil
}

// output returns the id of the output gate called name, or the first output
// when name is empty.
func (s *session) output(name string) (int, error) {
	outs := s.net.Outputs()
	if len(outs) == 0 {
		return 0, fmt.Errorf("circuit has no outputs")
	}
	if name == "" {
		return outs[0], nil
	}
	for _, id := range outs {
		if s.net.Gate(id).Name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("no output named %q", name)
}

// gates returns the ids and names of all outputs and next-state gates, in
// the order they are built.
func (s *session) gates() (ids []int, names []string) {
	for _, id := range s.net.Outputs() {
		ids = append(ids, id)
		names = append(names, s.net.Gate(id).Name)
	}
	for _, r := range s.net.Registers() {
		ids = append(ids, r.Input)
		names = append(names, s.net.Gate(r.Input).Name)
	}
	return ids, names
}

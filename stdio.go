// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package bfdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// PrintStats outputs a textual representation of the manager statistics.
func (m *Manager) PrintStats() {
	fmt.Println("==============")
	fmt.Println(m.Stats())
	fmt.Println("==============")
	if _DEBUG {
		m.bdd.logTable()
		m.fdd.logTable()
	}
}

// ******************************************************************************************************

// Fprint outputs an indented description of the BDD with root n. Each line
// gives the level and polarity of an edge; nodes that were already printed
// are marked with (*) and not expanded again.
func (m *Manager) Fprint(w io.Writer, n BDD) error {
	return m.bdd.fprint(w, m.bedge(n))
}

// FprintFdd outputs an indented description of the FDD with root n, in the
// same format than Fprint.
func (m *Manager) FprintFdd(w io.Writer, n FDD) error {
	return m.fdd.fprint(w, m.fedge(n))
}

func (k *kernel) fprint(w io.Writer, e Edge) error {
	bw := bufio.NewWriter(w)
	visited := make(map[NodeID]bool)
	var rec func(e Edge, indent int)
	rec = func(e Edge, indent int) {
		fmt.Fprintf(bw, "%s[%d](%s)", strings.Repeat(" ", indent), k.level(e), e.Pol)
		if visited[e.ID] {
			fmt.Fprint(bw, " (*)")
			return
		}
		visited[e.ID] = true
		if e.IsTerminal() {
			return
		}
		hi, lo := k.children(e)
		fmt.Fprintln(bw)
		rec(hi, indent+2)
		fmt.Fprintln(bw)
		rec(lo, indent+2)
	}
	rec(e, 0)
	fmt.Fprintf(bw, "\n\n==> Total #%sNodes : %d\n", strings.ToUpper(k.name[:1])+k.name[1:], len(visited))
	return bw.Flush()
}

// FprintTable outputs all the nodes in the tables of m, one per line.
func (m *Manager) FprintTable(w io.Writer) error {
	for _, k := range []*kernel{&m.bdd, &m.fdd} {
		fmt.Fprintf(w, "== %s ==\n", strings.ToUpper(k.name))
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		for id := 2; id < len(k.nodes); id++ {
			n := k.nodes[id]
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%s\t : %s\t(%d)\n", id, n.level, n.hi, n.lo, n.ref)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// ******************************************************************************************************

// WriteDot outputs a GraphViz DOT description of the BDD with root n. The
// then edges are solid, the else edges are dotted and red, and complemented
// edges end with a circle. Each node is drawn exactly once.
func (m *Manager) WriteDot(w io.Writer, name string, n BDD) error {
	return m.bdd.writeDot(w, name, m.bedge(n))
}

// WriteFddDot outputs a GraphViz DOT description of the FDD with root n, see
// WriteDot. The then edges of an FDD point to the difference.
func (m *Manager) WriteFddDot(w io.Writer, name string, n FDD) error {
	return m.fdd.writeDot(w, name, m.fedge(n))
}

// FPrintDot writes the DOT description of n in file filename, or on the
// standard output if filename is "-".
func (m *Manager) FPrintDot(filename, name string, n BDD) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return m.WriteDot(out, name, n)
}

func (k *kernel) writeDot(w io.Writer, name string, e Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	fmt.Fprintln(bw, "   node [shape = plaintext];")
	fmt.Fprint(bw, "   ")
	for l := k.level(e); l > 0; l-- {
		fmt.Fprintf(bw, "%d -> ", l)
	}
	fmt.Fprintln(bw, "0 [style = invis];")
	fmt.Fprintf(bw, "   { rank = source; %q; }\n", name)
	fmt.Fprintln(bw, "   node [shape = ellipse];")
	fmt.Fprintf(bw, "   %q -> %q [color = blue]%s\n", name, dotname(e), arrowhead(e))
	visited := make(map[NodeID]bool)
	var rec func(e Edge)
	rec = func(e Edge) {
		if visited[e.ID] {
			return
		}
		visited[e.ID] = true
		if e.IsTerminal() {
			return
		}
		hi, lo := k.children(e)
		fmt.Fprintf(bw, "   { rank = same; %d; %q; }\n", k.level(e), dotname(e))
		fmt.Fprintf(bw, "   %q -> %q%s\n", dotname(e), dotname(hi), arrowhead(hi))
		fmt.Fprintf(bw, "   %q -> %q [style = dotted] [color = red]%s\n", dotname(e), dotname(lo), arrowhead(lo))
		rec(hi)
		rec(lo)
	}
	rec(e)
	fmt.Fprintln(bw, "   { rank = same; 0; \"One\"; }")
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotname(e Edge) string {
	if e.IsTerminal() {
		return "One"
	}
	return fmt.Sprintf("n%d", e.ID)
}

func arrowhead(e Edge) string {
	if e.Pol == Neg {
		return " [arrowhead = odot];"
	}
	return ";"
}

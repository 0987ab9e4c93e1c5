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

//go:build debug

package bfdd

import "fmt"

const _DEBUG bool = true

// checknode panics if the node about to be inserted in kernel k breaks one of
// the ordering or canonicity constraints.
func (k *kernel) checknode(hi, lo Edge, level int) {
	if hi.IsNull() || lo.IsNull() {
		panic(fmt.Sprintf("%s: null child in node at level %d", k.name, level))
	}
	if k.level(hi) >= level || k.level(lo) >= level {
		panic(fmt.Sprintf("%s: child above level %d", k.name, level))
	}
	switch k.family {
	case shannon:
		// equal children are legal in FDD, (x, 1, 1) is the negation of x
		if hi == lo {
			panic(fmt.Sprintf("bdd: redundant node (%s, %s) at level %d", hi, lo, level))
		}
		if hi.Pol == Neg {
			panic(fmt.Sprintf("bdd: negative then edge at level %d", level))
		}
	case davio:
		if hi == edgeZero {
			panic(fmt.Sprintf("fdd: zero difference at level %d", level))
		}
		if (!hi.IsTerminal() && hi.Pol == Neg) || (!lo.IsTerminal() && lo.Pol == Neg) {
			panic(fmt.Sprintf("fdd: negative interior edge at level %d", level))
		}
	}
}

// logTable dumps the node table of k at debug level.
func (k *kernel) logTable() {
	for id := 2; id < len(k.nodes); id++ {
		n := k.nodes[id]
		k.log.Debugf("%-4d (%-3d, %-5s, %-5s) ref: %-5d next: %d", id, n.level, n.hi, n.lo, n.ref, n.next)
	}
}

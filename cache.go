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

// ************************************************************

// Operations memoized in the computed caches. The value 0 marks an empty slot.
const (
	opNone uint8 = iota
	opIte
	opFddNot
	opFddXor
	opFddOr
)

// cache is a direct-mapped computed table. It has a fixed capacity and a write
// always overwrites the previous entry in the same slot. Since operands and
// results are canonical edges that stay valid until the manager is reset, a
// stale entry is simply never matched.
type cache struct {
	table []cacheData
	hit   int // number of successful reads
	miss  int // number of failed reads
}

// cacheData is a unit of information stored in the cache
type cacheData struct {
	op  uint8
	a   Edge
	b   Edge
	c   Edge
	res Edge
}

// ************************************************************

func (bc *cache) cacheinit(size int) {
	// we never check if the creation of the slice panic because of lack of memory
	size = primeLte(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k].op = opNone
	}
	bc.hit = 0
	bc.miss = 0
}

func (bc *cache) slot(op uint8, a, b, c Edge) int {
	return _TRIPLE(op, a.word(), b.word(), c.word(), len(bc.table))
}

// read returns the result stored for (op, a, b, c), if any.
func (bc *cache) read(op uint8, a, b, c Edge) (Edge, bool) {
	entry := bc.table[bc.slot(op, a, b, c)]
	if entry.op == op && entry.a == a && entry.b == b && entry.c == c {
		bc.hit++
		return entry.res, true
	}
	bc.miss++
	return Edge{}, false
}

// write stores res as the result of (op, a, b, c) and returns res so that calls
// can be chained.
func (bc *cache) write(op uint8, a, b, c, res Edge) Edge {
	bc.table[bc.slot(op, a, b, c)] = cacheData{
		op:  op,
		a:   a,
		b:   b,
		c:   c,
		res: res,
	}
	return res
}

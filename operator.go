// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

type Operator int

// Operator describe the potential (binary) operations available on an Apply.
const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Difference
	OPless                   // Set difference
	OPinvimp                 // Reverse implication
)

var opnames = [10]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "unknown"
	}
	return opnames[op]
}

var opres = [10][2][2]int{
	//                      00    01               10    11
	OPand:    {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 0001
	OPxor:    {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 0110
	OPor:     {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}}, // 0111
	OPnand:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 1110
	OPnor:    {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 0}}, // 1000
	OPimp:    {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 1}}, // 1101
	OPbiimp:  {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 1001
	OPdiff:   {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 1, 1: 0}}, // 0010
	OPless:   {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 0, 1: 0}}, // 0100
	OPinvimp: {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 1, 1: 1}}, // 1011
}

// Eval returns the value of op on the Boolean values a and b.
func (op Operator) Eval(a, b bool) bool {
	return opres[op][btoi(a)][btoi(b)] == 1
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Left and right are the operand and opr is the requested
// operation and must be one of the following:
//
//	Identifier    Description            Truth table
//
//	OPand         logical and            [0,0,0,1]
//	OPxor         logical xor            [0,1,1,0]
//	OPor          logical or             [0,1,1,1]
//	OPnand        logical not-and        [1,1,1,0]
//	OPnor         logical not-or         [1,0,0,0]
//	OPimp         implication            [1,1,0,1]
//	OPbiimp       equivalence            [1,0,0,1]
//	OPdiff        set difference         [0,0,1,0]
//	OPless        less than              [0,1,0,0]
//	OPinvimp      reverse implication    [1,0,1,1]
//
// Every operator is an instance of Ite.
func (m *Manager) Apply(left, right BDD, op Operator) BDD {
	f := m.bedge(left)
	g := m.bedge(right)
	var res Edge
	switch op {
	case OPand:
		res = m.ite(f, g, edgeZero)
	case OPxor:
		res = m.ite(f, g.Not(), g)
	case OPor:
		res = m.ite(f, edgeOne, g)
	case OPnand:
		res = m.ite(f, g, edgeZero).Not()
	case OPnor:
		res = m.ite(f, edgeOne, g).Not()
	case OPimp:
		res = m.ite(f, g, edgeOne)
	case OPbiimp:
		res = m.ite(f, g, g.Not())
	case OPdiff:
		res = m.ite(f, g.Not(), edgeZero)
	case OPless:
		res = m.ite(f, edgeZero, g)
	case OPinvimp:
		res = m.ite(f, edgeOne, g.Not())
	default:
		panic("bfdd: unknown operator in Apply " + op.String())
	}
	return m.bddnode(res)
}

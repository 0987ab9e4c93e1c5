// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bfdd defines concrete types for Binary Decision Diagrams (BDD) and
Functional Decision Diagrams (FDD), two data structures used to efficiently
represent Boolean functions over a fixed set of variables.

Basics

Every diagram is owned by a Manager, created with a fixed number of supports
(input variables) using the function New. Each support is identified by its
level, an integer in the interval [1..NumSupports]; the constant nodes are at
level 0 and the top variable of a diagram is the one with the highest level.

Diagrams are hash-consed: two nodes obtained from the same manager are equal,
using ==, if and only if they represent the same function. BDD use
complemented edges, so negation is a constant time operation, and all the
Boolean connectives are computed with the if-then-else operator Ite. FDD use
the positive Davio expansion f = f0 ^ (x & (f1 ^ f0)) and provide the
operations Not, Xor, Or and And. Methods Bdd2Fdd and Fdd2Bdd convert between
the two representations.

Memory management

Nodes are never reclaimed during a computation. Reference counts are kept for
bookkeeping (see Retain and Release) but nodes are only freed by a call to
Init or Restart. Every node obtained before such a call becomes stale and
using it panics.

Errors

Operations that receive a node from another manager, a stale node, the null
node, or an illegal level panic with an error wrapping one of ErrForeignNode,
ErrStaleHandle, ErrNullNode or ErrIllegalLevel. Malformed input, such as a bad
pattern in EvalCube, is reported with an error value.

Use of build tags

To check the invariants of the node tables on every insertion, as well as to
unlock logging of the tables, you can compile your executable with the build
tag `debug`. The same tag runs the invariant tests, with `go test -tags debug`.
*/
package bfdd

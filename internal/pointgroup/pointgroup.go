// Package pointgroup implements the character tables of the eight
// Abelian point groups that are subgroups of D2h (including D2h
// itself), and the associated Cartesian operator actions. It exists as
// a realistic consumer of the concur package's Pool and Range/Split
// abstractions: applying a symmetry operator to a large batch of
// coefficients is exactly the kind of embarrassingly-parallel,
// chunk-and-recurse workload those primitives are for.
package pointgroup

import (
	"fmt"

	"github.com/nwxhpc/concur"
)

// Point is a coordinate in R^3.
type Point [3]float64

// Group holds the name, character table, and operator set of one of the
// eight Abelian point groups.
type Group struct {
	Name   string
	Order  int
	Irreps []string
	Ops    []string
	Chars  [][]int
}

// New constructs the named point group. Supported names are C1, C2, Ci,
// Cs, C2h, C2v, D2, D2h. An unrecognized name returns a concur.Error of
// kind UnknownOpErrorKind.
//
// Ci's irrep names are {ag, au} with the same order-2 character table
// layout as C2 and Cs. The reference source this table is ported from
// defines Ci's irrep names with a missing statement separator between
// the two assignments, a defect that does not affect the table's
// values but that this port simply does not reproduce.
func New(name string) (*Group, error) {
	switch name {
	case "C1":
		return &Group{
			Name: name, Order: 1,
			Irreps: []string{"a"},
			Ops:    []string{"e"},
			Chars:  [][]int{{1}},
		}, nil
	case "C2":
		return &Group{
			Name: name, Order: 2,
			Irreps: []string{"a", "b"},
			Ops:    []string{"e", "c2z"},
			Chars: [][]int{
				{1, 1},
				{1, -1},
			},
		}, nil
	case "Ci":
		return &Group{
			Name: name, Order: 2,
			Irreps: []string{"ag", "au"},
			Ops:    []string{"e", "i"},
			Chars: [][]int{
				{1, 1},
				{1, -1},
			},
		}, nil
	case "Cs":
		return &Group{
			Name: name, Order: 2,
			Irreps: []string{"a", "a'"},
			Ops:    []string{"e", "sxy"},
			Chars: [][]int{
				{1, 1},
				{1, -1},
			},
		}, nil
	case "C2h":
		return &Group{
			Name: name, Order: 4,
			Irreps: []string{"ag", "au", "bg", "bu"},
			Ops:    []string{"e", "c2z", "sxy", "i"},
			Chars: [][]int{
				{1, 1, 1, 1},
				{1, 1, -1, -1},
				{1, -1, -1, 1},
				{1, -1, 1, -1},
			},
		}, nil
	case "C2v":
		return &Group{
			Name: name, Order: 4,
			Irreps: []string{"a1", "a2", "b1", "b2"},
			Ops:    []string{"e", "c2z", "sxz", "syz"},
			Chars: [][]int{
				{1, 1, 1, 1},
				{1, 1, -1, -1},
				{1, -1, 1, -1},
				{1, -1, -1, 1},
			},
		}, nil
	case "D2":
		return &Group{
			Name: name, Order: 4,
			Irreps: []string{"a1", "b1", "b2", "b3"},
			Ops:    []string{"e", "c2z", "c2y", "c2x"},
			Chars: [][]int{
				{1, 1, 1, 1},
				{1, 1, -1, -1},
				{1, -1, 1, -1},
				{1, -1, -1, 1},
			},
		}, nil
	case "D2h":
		return &Group{
			Name: name, Order: 8,
			Irreps: []string{"ag", "au", "b1g", "b1u", "b2g", "b2u", "b3g", "b3u"},
			Ops:    []string{"e", "c2z", "c2y", "c2x", "i", "sxy", "sxz", "syz"},
			Chars: [][]int{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{1, 1, 1, 1, -1, -1, -1, -1},
				{1, 1, -1, -1, 1, 1, -1, -1},
				{1, 1, -1, -1, -1, -1, 1, 1},
				{1, -1, 1, -1, 1, -1, 1, -1},
				{1, -1, 1, -1, -1, 1, -1, 1},
				{1, -1, -1, 1, 1, -1, -1, 1},
				{1, -1, -1, 1, -1, 1, 1, -1},
			},
		}, nil
	default:
		return nil, concur.NewUnknownOpError(fmt.Sprintf("pointgroup: unknown group name %q", name))
	}
}

// Irmul returns the index of the irrep obtained by taking the direct
// product of irreps ir1 and ir2. Abelian point-group irreps compose by
// XOR of their index within the character table.
func (g *Group) Irmul(ir1, ir2 int) int {
	return ir1 ^ ir2
}

// ApplyOp applies group operator number op (0 <= op < g.Order) to a
// point.
func (g *Group) ApplyOp(op int, p Point) (Point, error) {
	if op < 0 || op >= len(g.Ops) {
		return Point{}, concur.NewUnknownOpError(fmt.Sprintf("pointgroup: operator index %d out of range for %s", op, g.Name))
	}
	return Apply(g.Ops[op], p)
}

// Apply applies a named Cartesian symmetry operator (e, c2z, c2y, c2x,
// sxy, sxz, syz, i) to a point. An unrecognized name returns a
// concur.Error of kind UnknownOpErrorKind.
func Apply(op string, p Point) (Point, error) {
	x, y, z := p[0], p[1], p[2]
	switch op {
	case "e":
		return Point{x, y, z}, nil
	case "c2z":
		return Point{-x, -y, z}, nil
	case "c2y":
		return Point{-x, y, -z}, nil
	case "c2x":
		return Point{x, -y, -z}, nil
	case "sxy":
		return Point{x, y, -z}, nil
	case "sxz":
		return Point{x, -y, z}, nil
	case "syz":
		return Point{-x, y, z}, nil
	case "i":
		return Point{-x, -y, -z}, nil
	default:
		return Point{}, concur.NewUnknownOpError(fmt.Sprintf("pointgroup: unknown operator name %q", op))
	}
}

package sorting

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// OutOfOrder reports whether a placed directly before b violates d.
func (d Direction) OutOfOrder(a, b int) bool {
	if d == Descending {
		return a < b
	}
	return a > b
}

// InOrder reports whether a may be placed before b; equal values are in order.
func (d Direction) InOrder(a, b int) bool {
	return !d.OutOfOrder(a, b)
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc", "a":
		return Ascending, nil
	case "descending", "desc", "d":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Role tags a position with its part in the current step.
type Role uint8

const (
	RolePrimary Role = iota
	RoleSecondary
	// RolePivotLow marks a partition's low bound, and the block width in merge sort.
	RolePivotLow
	RolePivotHigh
	RoleScan
	RoleMergeCursor
)

var roleNames = [...]string{
	RolePrimary:     "primary",
	RoleSecondary:   "secondary",
	RolePivotLow:    "pivot-low",
	RolePivotHigh:   "pivot-high",
	RoleScan:        "scan",
	RoleMergeCursor: "merge-cursor",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Roles lists every role in declaration order.
func Roles() []Role {
	return []Role{RolePrimary, RoleSecondary, RolePivotLow, RolePivotHigh, RoleScan, RoleMergeCursor}
}

type Mark struct {
	Index int
	Role  Role
}

// Step is the result of one producer activation.
type Step struct {
	Marks []Mark
	// Mutated is set when the activation changed the dataset.
	Mutated bool
}

// Roles folds the marks into a position map for a dataset of length n.
// Later marks win over earlier ones on the same position; positions outside
// [0, n) are dropped.
func (s Step) Roles(n int) map[int]Role {
	if len(s.Marks) == 0 {
		return nil
	}
	roles := make(map[int]Role, len(s.Marks))
	for _, m := range s.Marks {
		if m.Index < 0 || m.Index >= n {
			continue
		}
		roles[m.Index] = m.Role
	}
	return roles
}

// Producer is a resumable sort. Each Advance performs one atomic action on
// the bound dataset and reports it; ok is false once the dataset is sorted,
// after which Advance never mutates again.
type Producer interface {
	Advance() (step Step, ok bool)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChangeLog is the predicate function for changelog builders.
type ChangeLog func(*sql.Selector)

// Phase is the predicate function for phase builders.
type Phase func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Solution is the predicate function for solution builders.
type Solution func(*sql.Selector)

// SolutionPhase is the predicate function for solutionphase builders.
type SolutionPhase func(*sql.Selector)

// Subcomponent is the predicate function for subcomponent builders.
type Subcomponent func(*sql.Selector)

// SubcomponentPhaseStatus is the predicate function for subcomponentphasestatus builders.
type SubcomponentPhaseStatus func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivationToken is the predicate function for activationtoken builders.
type ActivationToken func(*sql.Selector)

// Bilan is the predicate function for bilan builders.
type Bilan func(*sql.Selector)

// Passation is the predicate function for passation builders.
type Passation func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// Test is the predicate function for test builders.
type Test func(*sql.Selector)

// TestItem is the predicate function for testitem builders.
type TestItem func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

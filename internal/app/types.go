package app

import "encoding/json"

// Record field names read or written by the transform
const (
	FieldTargetX  = "target_x"
	FieldTargetY  = "target_y"
	FieldDistance = "distance"
)

// Position is a map coordinate
type Position struct {
	X int
	Y int
}

// AttackRecord is one scheduled attack command as found in the commands
// array. Only target_x, target_y and distance are interpreted; every other
// field is carried through verbatim in its original order.
type AttackRecord struct {
	Object
}

// NewAttackRecord builds a record from fields in the given order
func NewAttackRecord(fields ...Field) AttackRecord {
	return AttackRecord{Object: NewObject(fields...)}
}

// With returns a copy of the record with key set to value
func (r AttackRecord) With(key string, value json.RawMessage) AttackRecord {
	return AttackRecord{Object: r.Object.With(key, value)}
}

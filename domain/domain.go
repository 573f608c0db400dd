package domain

import "fmt"

// Domain is the immutable, shared catalog of primitive actions and compound
// tasks a planning problem is defined over, keyed by TaskNameID. Every task
// network built by package htn references exactly one Domain for its
// lifetime; Domain values are never mutated after construction.
type Domain struct {
	entries map[TaskNameID]Task
}

// New builds a Domain from a task-name-id-keyed catalog. The caller owns the
// map's lifetime but must not mutate it afterwards.
func New(entries map[TaskNameID]Task) *Domain {
	return &Domain{entries: entries}
}

// Task returns the catalog entry for id, or false if id is unknown.
func (d *Domain) Task(id TaskNameID) (Task, bool) {
	t, ok := d.entries[id]

	return t, ok
}

// MustTask returns the catalog entry for id, panicking if none exists. A
// missing entry is a programming-contract violation (spec §7.2): every
// task-id in a well-formed HTN maps to a catalog entry.
func (d *Domain) MustTask(id TaskNameID) Task {
	t, ok := d.entries[id]
	if !ok {
		panic(fmt.Sprintf("domain: no catalog entry for task-name id %d", id))
	}

	return t
}

// IsCompound reports whether id names a compound task.
func (d *Domain) IsCompound(id TaskNameID) bool {
	_, ok := d.MustTask(id).(*CompoundTask)

	return ok
}

// IsPrimitive reports whether id names a primitive action.
func (d *Domain) IsPrimitive(id TaskNameID) bool {
	_, ok := d.MustTask(id).(*PrimitiveAction)

	return ok
}

// TaskNames returns every TaskNameID in the catalog. Order is unspecified;
// callers that need determinism should sort the result.
func (d *Domain) TaskNames() []TaskNameID {
	out := make([]TaskNameID, 0, len(d.entries))
	for id := range d.entries {
		out = append(out, id)
	}

	return out
}

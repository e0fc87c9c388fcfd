// Package enum implements the M8 codec's enum name<->value bindings.
// spec.md §9 calls for "Global enum registry → compile-time enum bindings":
// each (instrument family, field) pair binds to exactly one enum class whose
// membership is known statically, rather than being loaded at runtime from
// configuration.
package enum

import "fmt"

// UnknownEnumNameError is returned when a symbolic name isn't a member of
// the bound enum class.
type UnknownEnumNameError struct {
	Class string
	Name  string
}

func (e *UnknownEnumNameError) Error() string {
	return fmt.Sprintf("enum: %q is not a member of %s", e.Name, e.Class)
}

// UnknownEnumValueError is returned on strict decode when an integer isn't
// a member of the bound enum class. Non-strict callers (dict export) should
// downgrade this to a pass-through integer instead of propagating it.
type UnknownEnumValueError struct {
	Class string
	Value int64
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("enum: value %d is not a member of %s", e.Value, e.Class)
}

// Class is a closed, named set of (name, value) pairs.
type Class struct {
	Name       string
	nameToVal  map[string]int64
	valToName  map[int64]string
}

// NewClass builds a Class from an ordered list of (name, value) members.
// Order is preserved only for documentation purposes; lookups are by map.
func NewClass(name string, members []Member) *Class {
	c := &Class{
		Name:      name,
		nameToVal: make(map[string]int64, len(members)),
		valToName: make(map[int64]string, len(members)),
	}
	for _, m := range members {
		c.nameToVal[m.Name] = m.Value
		c.valToName[m.Value] = m.Name
	}
	return c
}

// Member is one enum entry.
type Member struct {
	Name  string
	Value int64
}

// ValueOf resolves a symbolic name to its integer value.
func (c *Class) ValueOf(name string) (int64, error) {
	v, ok := c.nameToVal[name]
	if !ok {
		return 0, &UnknownEnumNameError{Class: c.Name, Name: name}
	}
	return v, nil
}

// NameOf resolves an integer value to its symbolic name.
func (c *Class) NameOf(value int64) (string, error) {
	n, ok := c.valToName[value]
	if !ok {
		return "", &UnknownEnumValueError{Class: c.Name, Value: value}
	}
	return n, nil
}

// Has reports whether name is a member of the class.
func (c *Class) Has(name string) bool {
	_, ok := c.nameToVal[name]
	return ok
}

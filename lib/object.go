package lib

import "strconv"

// Object is a runtime value. It doubles as the literal payload on
// tokens, so the scanner's number/string literals come out as the same
// types the interpreter produces.
type Object interface {
	isObject()
}

func (n Nil) isObject()    {}
func (b Bool) isObject()   {}
func (n Number) isObject() {}
func (s String) isObject() {}

type Nil struct{}

type Bool bool

type Number float64

type String string

// isEqual is total: it never errors no matter what you feed it. Values
// of different types are never equal; nil only equals nil.
func isEqual(a Object, b Object) bool {
	switch left := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		right, ok := b.(Bool)
		return ok && left == right
	case Number:
		right, ok := b.(Number)
		return ok && left == right
	case String:
		right, ok := b.(String)
		return ok && left == right
	}
	return false
}

func stringify(obj Object) string {
	switch v := obj.(type) {
	case Nil:
		return "nil"
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Number:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case String:
		return string(v)
	}
	return "nil"
}

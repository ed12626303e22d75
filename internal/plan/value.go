package plan

import "github.com/tidwall/gjson"

// Kind tags the dynamic type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is a loosely-typed JSON node: null, bool, number, text, array or
// object. Missing object members read as null. The zero Value is null.
type Value struct {
	r gjson.Result
}

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind {
	switch v.r.Type {
	case gjson.True, gjson.False:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindText
	case gjson.JSON:
		if v.r.IsArray() {
			return KindArray
		}
		if v.r.IsObject() {
			return KindObject
		}
	}
	return KindNull
}

// Exists reports whether v came from an actual JSON token, including an
// explicit null.
func (v Value) Exists() bool {
	return v.r.Exists()
}

// Get returns the member named key when v is an object. Duplicate keys
// resolve to the last occurrence. Non-objects and missing keys yield null.
func (v Value) Get(key string) Value {
	if v.Kind() != KindObject {
		return Value{}
	}
	var found gjson.Result
	v.r.ForEach(func(k, member gjson.Result) bool {
		if k.Str == key {
			found = member
		}
		return true
	})
	return Value{r: found}
}

// Array returns the elements of v and true when v is an array.
func (v Value) Array() ([]Value, bool) {
	if v.Kind() != KindArray {
		return nil, false
	}
	items := v.r.Array()
	out := make([]Value, len(items))
	for i, it := range items {
		out[i] = Value{r: it}
	}
	return out, true
}

// Text returns the string content of v and true when v is a JSON string.
func (v Value) Text() (string, bool) {
	if v.Kind() != KindText {
		return "", false
	}
	return v.r.Str, true
}

// Number returns the numeric value of v and true when v is a JSON number.
func (v Value) Number() (float64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	return v.r.Num, true
}

// Bool returns the boolean value of v and true when v is a JSON boolean.
func (v Value) Bool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.r.Type == gjson.True, true
}

// Raw returns the source JSON text of v.
func (v Value) Raw() string {
	return v.r.Raw
}

package notion

import (
	"github.com/tidwall/sjson"
)

// Filter is a database query filter expression. The zero value is the empty filter.
type Filter struct {
	property  PropertyType
	condition string
	value     string
	and       []Filter
}

func newFilter(property PropertyType, condition, value string) Filter {
	return Filter{property: property, condition: condition, value: value}
}

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return f.condition == "" && len(f.and) == 0
}

// And combines two filters with a logical AND, flattening nested conjunctions.
func (f Filter) And(other Filter) Filter {
	switch {
	case f.IsEmpty():
		return other
	case other.IsEmpty():
		return f
	}

	var and []Filter
	and = append(and, f.operands()...)
	and = append(and, other.operands()...)
	return Filter{and: and}
}

func (f Filter) operands() []Filter {
	if len(f.and) > 0 {
		return f.and
	}
	return []Filter{f}
}

// JSON renders the filter in the remote API's shape:
// {"property":"Tag","multi_select":{"contains":"go"}} or {"and":[...]}.
func (f Filter) JSON() (string, error) {
	if f.IsEmpty() {
		return "", nil
	}

	if len(f.and) > 0 {
		out := `{"and":[]}`
		for _, operand := range f.and {
			raw, err := operand.JSON()
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, "and.-1", raw)
			if err != nil {
				return "", err
			}
		}
		return out, nil
	}

	out, err := sjson.Set("{}", "property", f.property.Name)
	if err != nil {
		return "", err
	}
	return sjson.Set(out, f.property.Kind.Tag()+"."+f.condition, f.value)
}

package notion

import (
	"github.com/tidwall/gjson"
)

// PropertyKind is the closed set of property kinds a page field can hold.
type PropertyKind int

const (
	KindText PropertyKind = iota
	KindNumber
	KindCheckbox
	KindSelect
	KindMultiSelect
	KindStatus
	KindDate
	KindPeople
	KindFiles
	KindRelation
	KindRollup
	KindFormula
)

var kindTags = [...]string{
	KindText:        "rich_text",
	KindNumber:      "number",
	KindCheckbox:    "checkbox",
	KindSelect:      "select",
	KindMultiSelect: "multi_select",
	KindStatus:      "status",
	KindDate:        "date",
	KindPeople:      "people",
	KindFiles:       "files",
	KindRelation:    "relation",
	KindRollup:      "rollup",
	KindFormula:     "formula",
}

// Kinds lists every known property kind.
func Kinds() []PropertyKind {
	kinds := make([]PropertyKind, len(kindTags))
	for i := range kindTags {
		kinds[i] = PropertyKind(i)
	}
	return kinds
}

// Tag returns the wire tag of the kind.
func (k PropertyKind) Tag() string {
	if k < 0 || int(k) >= len(kindTags) {
		return ""
	}
	return kindTags[k]
}

func (k PropertyKind) String() string {
	return k.Tag()
}

// ResolveKind maps a wire tag to its kind.
func ResolveKind(tag string) (PropertyKind, error) {
	for i, t := range kindTags {
		if t == tag {
			return PropertyKind(i), nil
		}
	}
	return 0, unknownPropertyType(tag)
}

// PropertyType is a property kind together with the display name of the field carrying it.
type PropertyType struct {
	Kind PropertyKind
	Name string
}

// NewPropertyType resolves tag and attaches name to it.
func NewPropertyType(tag, name string) (PropertyType, error) {
	kind, err := ResolveKind(tag)
	if err != nil {
		return PropertyType{}, err
	}
	return PropertyType{Kind: kind, Name: name}, nil
}

// WithName returns a copy of the type carrying a different name.
func (p PropertyType) WithName(name string) PropertyType {
	return PropertyType{Kind: p.Kind, Name: name}
}

func (p PropertyType) Equals(value string) Filter {
	return newFilter(p, "equals", value)
}

func (p PropertyType) DoesNotEqual(value string) Filter {
	return newFilter(p, "does_not_equal", value)
}

func (p PropertyType) Contains(value string) Filter {
	return newFilter(p, "contains", value)
}

func (p PropertyType) DoesNotContain(value string) Filter {
	return newFilter(p, "does_not_contain", value)
}

// Record is one flattened element of a property payload.
type Record map[string]string

// Property is a named, typed page field normalized into flat string records.
type Property struct {
	Type PropertyType
	Data []Record
}

// NewProperty extracts a property from its tagged-union node. Array payloads contribute one record
// per element, any other payload contributes a single record. Object elements keep their own keys,
// scalar elements are keyed by the type tag.
func NewProperty(name string, node gjson.Result) (*Property, error) {
	payload, err := TaggedPayload(node)
	if err != nil {
		return nil, err
	}
	tag, err := String(node, "type")
	if err != nil {
		return nil, err
	}

	elements := []gjson.Result{payload}
	if payload.IsArray() {
		elements = payload.Array()
	}

	data := make([]Record, 0, len(elements))
	for _, element := range elements {
		record := make(Record)
		if element.IsObject() {
			element.ForEach(func(key, value gjson.Result) bool {
				record[key.String()] = stringify(value)
				return true
			})
		} else {
			record[tag] = stringify(element)
		}
		data = append(data, record)
	}

	propertyType, err := NewPropertyType(tag, name)
	if err != nil {
		return nil, err
	}

	return &Property{
		Type: propertyType,
		Data: data,
	}, nil
}

// valueKey is the record key SearchProperty reads for this property's kind.
func (p *Property) valueKey() string {
	switch p.Type.Kind {
	case KindDate:
		return "date"
	case KindText:
		return "plain_text"
	default:
		return "name"
	}
}

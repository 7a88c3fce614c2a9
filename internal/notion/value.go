package notion

import (
	"github.com/tidwall/gjson"
)

// TaggedPayload unwraps a tagged-union node of the form {"type": "<kind>", "<kind>": <payload>}.
// When key is given the node is first navigated to node[key].
func TaggedPayload(node gjson.Result, key ...string) (gjson.Result, error) {
	for _, k := range key {
		next := node.Get(gjson.Escape(k))
		if !next.Exists() {
			return gjson.Result{}, missingField(k)
		}
		node = next
	}

	tag, err := String(node, "type")
	if err != nil {
		return gjson.Result{}, err
	}

	payload := node.Get(gjson.Escape(tag))
	if !payload.Exists() {
		return gjson.Result{}, missingField(tag)
	}

	return payload, nil
}

// String returns node[key] as a string.
func String(node gjson.Result, key string) (string, error) {
	value := node.Get(gjson.Escape(key))
	if !value.Exists() {
		return "", missingField(key)
	}
	if value.Type != gjson.String {
		return "", notAString(key)
	}

	return value.Str, nil
}

// optionalString is String with absent or non-string values mapped to "".
func optionalString(node gjson.Result, key string) string {
	s, err := String(node, key)
	if err != nil {
		return ""
	}
	return s
}

// stringify renders a JSON value the way property records store it.
func stringify(value gjson.Result) string {
	switch value.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return value.Str
	default:
		return value.Raw
	}
}

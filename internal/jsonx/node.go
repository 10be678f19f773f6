// Package jsonx provides tolerant, path-aware access to loosely typed JSON
// documents such as Flickr responses.
//
// Required getters fail with a *flickr.DecodeError naming the field path when
// the key is absent, null or of the wrong type. Optional getters treat an
// absent key and an explicit null the same way and report whether a value was
// present.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// contentKey is the key Flickr uses to wrap text values: {"_content": "..."}.
const contentKey = "_content"

// flagTrue is the textual encoding of a true flag.
const flagTrue = "1"

// Node is a JSON value together with its location in the document.
type Node struct {
	value interface{}
	path  string
}

// Parse decodes a JSON document into a root Node. Numbers are kept as
// json.Number so that large integers survive.
func Parse(data []byte) (Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value interface{}

	err := decoder.Decode(&value)
	if err != nil {
		return Node{}, &flickr.DecodeError{Path: "$", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	return Node{value: value}, nil
}

// Path returns the dotted location of the node; the root is "$".
func (n Node) Path() string {
	if n.path == "" {
		return "$"
	}

	return n.path
}

// Has reports whether key is present with a non-null value.
func (n Node) Has(key string) bool {
	_, ok := n.lookup(key)

	return ok
}

// Object returns the required nested object under key.
func (n Node) Object(key string) (Node, error) {
	child, err := n.required(key)
	if err != nil {
		return Node{}, err
	}

	if _, ok := child.value.(map[string]interface{}); !ok {
		return Node{}, child.mismatch("object")
	}

	return child, nil
}

// Array returns the elements of the required array under key.
func (n Node) Array(key string) ([]Node, error) {
	child, err := n.required(key)
	if err != nil {
		return nil, err
	}

	values, ok := child.value.([]interface{})
	if !ok {
		return nil, child.mismatch("array")
	}

	nodes := make([]Node, len(values))
	for i, value := range values {
		nodes[i] = Node{value: value, path: fmt.Sprintf("%s[%d]", child.path, i)}
	}

	return nodes, nil
}

// String returns the required scalar under key as text.
func (n Node) String(key string) (string, error) {
	child, err := n.required(key)
	if err != nil {
		return "", err
	}

	text, ok := child.text()
	if !ok {
		return "", child.mismatch("string")
	}

	return text, nil
}

// OptionalString returns the scalar under key as text. An absent key, an
// explicit null and an empty {"_content"} wrapper all report ok == false.
func (n Node) OptionalString(key string) (string, bool, error) {
	child, present := n.lookup(key)
	if !present || child.isEmptyWrapper() {
		return "", false, nil
	}

	text, ok := child.text()
	if !ok {
		return "", false, child.mismatch("string")
	}

	return text, true, nil
}

// StringOr returns the optional scalar under key, or fallback when it is
// absent or null.
func (n Node) StringOr(key, fallback string) (string, error) {
	text, ok, err := n.OptionalString(key)
	if err != nil {
		return "", err
	}

	if !ok {
		return fallback, nil
	}

	return text, nil
}

// Int returns the required integer under key. Numeric strings are accepted.
func (n Node) Int(key string) (int, error) {
	value, err := n.Int64(key)
	if err != nil {
		return 0, err
	}

	return int(value), nil
}

// Int64 returns the required 64-bit integer under key. Numeric strings are
// accepted.
func (n Node) Int64(key string) (int64, error) {
	child, err := n.required(key)
	if err != nil {
		return 0, err
	}

	var raw string

	switch value := child.value.(type) {
	case json.Number:
		raw = value.String()
	case string:
		raw = strings.TrimSpace(value)
	default:
		return 0, child.mismatch("integer")
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &flickr.DecodeError{Path: child.path, Reason: fmt.Sprintf("not an integer: %q", raw)}
	}

	return parsed, nil
}

// Flag returns the required textual flag under key: true iff its value is "1".
func (n Node) Flag(key string) (bool, error) {
	text, err := n.String(key)
	if err != nil {
		return false, err
	}

	return text == flagTrue, nil
}

// OptionalFlag returns the textual flag under key, defaulting to false when
// the key is absent or null.
func (n Node) OptionalFlag(key string) (bool, error) {
	text, ok, err := n.OptionalString(key)
	if err != nil {
		return false, err
	}

	return ok && text == flagTrue, nil
}

func (n Node) lookup(key string) (Node, bool) {
	fields, ok := n.value.(map[string]interface{})
	if !ok {
		return Node{}, false
	}

	value, ok := fields[key]
	if !ok || value == nil {
		return Node{}, false
	}

	return Node{value: value, path: n.childPath(key)}, true
}

func (n Node) required(key string) (Node, error) {
	if _, ok := n.value.(map[string]interface{}); !ok {
		return Node{}, n.mismatch("object")
	}

	child, ok := n.lookup(key)
	if !ok {
		return Node{}, &flickr.DecodeError{Path: n.childPath(key), Reason: "missing required field"}
	}

	return child, nil
}

// isEmptyWrapper reports whether the node is {} or {"_content": null}.
func (n Node) isEmptyWrapper() bool {
	fields, ok := n.value.(map[string]interface{})
	if !ok {
		return false
	}

	switch len(fields) {
	case 0:
		return true
	case 1:
		content, found := fields[contentKey]

		return found && content == nil
	default:
		return false
	}
}

// text stringifies scalars and unwraps {"_content": scalar}.
func (n Node) text() (string, bool) {
	switch value := n.value.(type) {
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	case map[string]interface{}:
		content, ok := value[contentKey]
		if !ok || content == nil {
			return "", false
		}

		return Node{value: content, path: n.childPath(contentKey)}.text()
	default:
		return "", false
	}
}

func (n Node) childPath(key string) string {
	if n.path == "" {
		return key
	}

	return n.path + "." + key
}

func (n Node) mismatch(want string) error {
	return &flickr.DecodeError{Path: n.Path(), Reason: fmt.Sprintf("expected %s, got %s", want, kind(n.value))}
}

func kind(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", value)
	}
}

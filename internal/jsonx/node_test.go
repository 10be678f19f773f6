package jsonx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/flickr/internal/jsonx"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

func mustParse(t *testing.T, data string) jsonx.Node {
	t.Helper()

	node, err := jsonx.Parse([]byte(data))
	require.NoError(t, err)

	return node
}

func requireDecodeError(t *testing.T, err error, path string) {
	t.Helper()

	var decodeErr *flickr.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
}

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := jsonx.Parse([]byte(`{"stat":`))
	requireDecodeError(t, err, "$")

	root := mustParse(t, `{"a":1}`)
	assert.Equal(t, "$", root.Path())
}

func TestNode_String(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `{"user":{"plain":"bees","wrapped":{"_content":"Cal"},"number":66,"bool":true,
		"null":null,"list":[1],"empty_wrapper":{}}}`)

	user, err := root.Object("user")
	require.NoError(t, err)
	assert.Equal(t, "user", user.Path())

	tests := []struct {
		key  string
		want string
	}{
		{key: "plain", want: "bees"},
		{key: "wrapped", want: "Cal"},
		{key: "number", want: "66"},
		{key: "bool", want: "true"},
	}

	for _, tt := range tests {
		got, err := user.String(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}

	_, err = user.String("null")
	requireDecodeError(t, err, "user.null")
	assert.Contains(t, err.Error(), "missing required field")

	_, err = user.String("absent")
	requireDecodeError(t, err, "user.absent")

	_, err = user.String("list")
	requireDecodeError(t, err, "user.list")
	assert.Contains(t, err.Error(), "expected string, got array")

	_, err = user.String("empty_wrapper")
	requireDecodeError(t, err, "user.empty_wrapper")
}

func TestNode_OptionalString(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `{"present":{"_content":"x"},"null":null,"object":{"a":1},`+
		`"wrappedNull":{"_content":null},"emptyWrapper":{}}`)

	value, ok, err := root.OptionalString("present")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", value)

	for _, key := range []string{"null", "absent", "wrappedNull", "emptyWrapper"} {
		value, ok, err = root.OptionalString(key)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	}

	_, _, err = root.OptionalString("object")
	requireDecodeError(t, err, "object")

	_, err = root.String("wrappedNull")
	requireDecodeError(t, err, "wrappedNull")

	flag, err := root.OptionalFlag("wrappedNull")
	require.NoError(t, err)
	assert.False(t, flag)

	fallback, err := root.StringOr("absent", "n/a")
	require.NoError(t, err)
	assert.Equal(t, "n/a", fallback)
}

func TestNode_Int(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `{"number":20,"text":"93","big":"2147483648000","float":1.5,"word":"many","bool":true}`)

	number, err := root.Int("number")
	require.NoError(t, err)
	assert.Equal(t, 20, number)

	text, err := root.Int("text")
	require.NoError(t, err)
	assert.Equal(t, 93, text)

	big, err := root.Int64("big")
	require.NoError(t, err)
	assert.Equal(t, int64(2147483648000), big)

	_, err = root.Int("float")
	requireDecodeError(t, err, "float")

	_, err = root.Int("word")
	requireDecodeError(t, err, "word")
	assert.Contains(t, err.Error(), "not an integer")

	_, err = root.Int("bool")
	requireDecodeError(t, err, "bool")

	_, err = root.Int("absent")
	requireDecodeError(t, err, "absent")
}

func TestNode_Flag(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `{"one":1,"one_text":"1","zero":0,"zero_text":"0","other":"2","wrapped":{"_content":"1"}}`)

	for key, want := range map[string]bool{
		"one":       true,
		"one_text":  true,
		"zero":      false,
		"zero_text": false,
		"other":     false,
		"wrapped":   true,
	} {
		got, err := root.Flag(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err := root.Flag("absent")
	requireDecodeError(t, err, "absent")

	optional, err := root.OptionalFlag("absent")
	require.NoError(t, err)
	assert.False(t, optional)

	optional, err = root.OptionalFlag("one")
	require.NoError(t, err)
	assert.True(t, optional)
}

func TestNode_Array(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `{"groups":{"group":[{"nsid":"a"},{"nsid":"b"}],"single":{"nsid":"c"},"empty":[]}}`)

	groups, err := root.Object("groups")
	require.NoError(t, err)

	items, err := groups.Array("group")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "groups.group[1]", items[1].Path())

	_, err = items[1].String("name")
	requireDecodeError(t, err, "groups.group[1].name")

	empty, err := groups.Array("empty")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = groups.Array("single")
	requireDecodeError(t, err, "groups.single")
	assert.Contains(t, err.Error(), "expected array, got object")

	_, err = groups.Object("group")
	requireDecodeError(t, err, "groups.group")
}

func TestNode_Has(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `{"id":"x","nsid":null}`)

	assert.True(t, root.Has("id"))
	assert.False(t, root.Has("nsid"))
	assert.False(t, root.Has("absent"))

	scalar := mustParse(t, `"text"`)
	assert.False(t, scalar.Has("id"))

	_, err := scalar.String("id")
	requireDecodeError(t, err, "$")
}

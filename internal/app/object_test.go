package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys returns the member names in document order
func keys(o Object) []string {
	names := make([]string, len(o.fields))
	for i, f := range o.fields {
		names[i] = f.Key
	}
	return names
}

func TestObject_RoundTripKeepsOrder(t *testing.T) {
	input := `{"startTime":"2015-05-08T22:58:57","target":"Ünïcödé <village>","target_x":76,"troops":[0,5,0],"bPause":false,"decrease":0.0}`

	var o Object
	require.NoError(t, json.Unmarshal([]byte(input), &o))

	assert.Equal(t, []string{"startTime", "target", "target_x", "troops", "bPause", "decrease"}, keys(o))

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	assert.Contains(t, string(out), `"decrease":0.0`)
}

func TestObject_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	var o Object
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`), &o))

	assert.Equal(t, []string{"a", "b"}, keys(o))
	value, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, "3", string(value))
}

func TestObject_RejectsNonObjects(t *testing.T) {
	for _, input := range []string{`null`, `[1,2]`, `"text"`, `12`} {
		var o Object
		assert.Error(t, json.Unmarshal([]byte(input), &o), input)
	}
}

func TestObject_WithDoesNotModifyReceiver(t *testing.T) {
	original := NewObject(
		Field{Key: "a", Value: json.RawMessage(`1`)},
		Field{Key: "b", Value: json.RawMessage(`2`)},
	)

	overwritten := original.With("a", json.RawMessage(`10`))
	appended := original.With("c", json.RawMessage(`3`))

	assert.Equal(t, []string{"a", "b"}, keys(overwritten))
	assert.Equal(t, []string{"a", "b", "c"}, keys(appended))

	value, _ := original.Get("a")
	assert.Equal(t, "1", string(value))
	assert.Equal(t, 2, len(original.fields))

	value, _ = overwritten.Get("a")
	assert.Equal(t, "10", string(value))
}

func TestObject_MarshalDoesNotEscapeHTMLInKeys(t *testing.T) {
	o := NewObject(Field{Key: "<b>&", Value: json.RawMessage(`true`)})

	out, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"<b>&":true}`, string(out))
}

func TestAttackRecord_JSON(t *testing.T) {
	var records []AttackRecord
	require.NoError(t, json.Unmarshal([]byte(`[{"target_x":1,"target_y":2},{"target_x":3,"target_y":4}]`), &records))
	require.Len(t, records, 2)

	updated := records[0].With(FieldDistance, json.RawMessage(`2.24`))
	assert.Equal(t, []string{FieldTargetX, FieldTargetY, FieldDistance}, keys(updated.Object))
	assert.Equal(t, 2, len(records[0].fields))

	out, err := json.Marshal([]AttackRecord{updated, records[1]})
	require.NoError(t, err)
	assert.Equal(t, `[{"target_x":1,"target_y":2,"distance":2.24},{"target_x":3,"target_y":4}]`, string(out))
}

func TestMalformedRecordError(t *testing.T) {
	missing := &MalformedRecordError{Index: 2, Field: FieldTargetX}
	assert.Equal(t, "command 2: missing target_x", missing.Error())

	cause := assert.AnError
	invalid := &MalformedRecordError{Index: 0, Field: FieldTargetY, Value: `"north"`, Err: cause}
	assert.Equal(t, `command 0: target_y value "north" is not an integer: `+cause.Error(), invalid.Error())
	assert.ErrorIs(t, invalid, cause)
}

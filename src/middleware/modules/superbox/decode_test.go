package superbox

import (
	"bytes"
	"testing"

	helpers "superbox/src/middleware/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeControlCharsOnlyInsideStrings(t *testing.T) {
	input := []byte("{\n\t\"a\":\"x\ty\u0001\",\n\t\"b\":\"q\\\"\n\"\n}")
	expected := "{\n\t\"a\":\"x\\ty\\u0001\",\n\t\"b\":\"q\\\"\\n\"\n}"

	assert.Equal(t, expected, string(escapeControlChars(input)))
}

func TestDecodeObjectStrict(t *testing.T) {
	var logs bytes.Buffer
	body, err := decodeObject(helpers.NewLoggerTo(&logs), []byte(`{"result":"0"}`))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"result": "0"}, body)
	assert.Empty(t, logs.String())
}

func TestDecodeObjectLenientComments(t *testing.T) {
	var logs bytes.Buffer
	body, err := decodeObject(helpers.NewLoggerTo(&logs), []byte("{\"a\":\"1\", // note\n\"b\":\"2\",}"))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, body)
	assert.Contains(t, logs.String(), "Forcing Lenient Decoding")
}

func TestDecodeObjectEmptyBody(t *testing.T) {
	_, err := decodeObject(helpers.NewLoggerTo(&bytes.Buffer{}), nil)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

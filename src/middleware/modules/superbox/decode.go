package superbox

import (
	"bytes"
	"encoding/json"
	"fmt"

	helpers "superbox/src/middleware/helpers"

	"github.com/tidwall/jsonc"
)

// decodeObject parses a device reply. Some firmware builds put raw control
// characters inside string values (SMS bodies mostly), so a strict failure is
// followed by a lenient pass before giving up.
func decodeObject(logger *helpers.ColorizedLogger, body []byte) (map[string]any, error) {
	var result map[string]any
	strictErr := json.Unmarshal(body, &result)
	if strictErr == nil {
		return result, nil
	}

	logger.Warn("Could Not Decode JSON Gracefully: " + strictErr.Error())
	logger.Warn("Forcing Lenient Decoding...")

	result = nil
	lenientErr := json.Unmarshal(jsonc.ToJSON(escapeControlChars(body)), &result)
	if lenientErr == nil {
		return result, nil
	}

	return nil, &DecodeError{
		Body:       body,
		StrictErr:  strictErr,
		LenientErr: lenientErr,
	}
}

// escapeControlChars rewrites bytes below 0x20 that appear inside string
// literals into JSON escapes. Bytes outside strings are left alone.
func escapeControlChars(body []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(body))

	inString, escaped := false, false
	for _, b := range body {
		switch {
		case escaped:
			escaped = false
		case inString && b == '\\':
			escaped = true
		case b == '"':
			inString = !inString
		case inString && b < 0x20:
			switch b {
			case '\n':
				out.WriteString(`\n`)
			case '\r':
				out.WriteString(`\r`)
			case '\t':
				out.WriteString(`\t`)
			default:
				out.WriteString(fmt.Sprintf(`\u%04x`, b))
			}
			continue
		}
		out.WriteByte(b)
	}
	return out.Bytes()
}

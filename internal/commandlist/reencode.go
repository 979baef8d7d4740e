package commandlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// container tracks the members written so far inside an array or object
type container struct {
	object bool
	n      int
}

// reencode rewrites a JSON document token by token. Strings are re-encoded
// so escapes such as \u00e9 or \u003c come out as the literal characters;
// numbers and the member order are kept as read.
func reencode(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out bytes.Buffer
	var stack []container
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return nil, fmt.Errorf("failed to re-encode attack list: %w", io.ErrUnexpectedEOF)
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to re-encode attack list: %w", err)
		}

		if delim, ok := tok.(json.Delim); ok && (delim == '}' || delim == ']') {
			stack = stack[:len(stack)-1]
			out.WriteByte(byte(delim))
			continue
		}

		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.n > 0 {
				// object members alternate key, value
				if top.object && top.n%2 == 1 {
					out.WriteByte(':')
				} else {
					out.WriteByte(',')
				}
			}
			top.n++
		}

		switch v := tok.(type) {
		case json.Delim:
			stack = append(stack, container{object: v == '{'})
			out.WriteByte(byte(v))
		case string:
			if err := writeString(&out, v); err != nil {
				return nil, err
			}
		case json.Number:
			out.WriteString(v.String())
		case bool:
			out.WriteString(strconv.FormatBool(v))
		case nil:
			out.WriteString("null")
		default:
			return nil, fmt.Errorf("unexpected JSON token %v", v)
		}
	}
	return out.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode string: %w", err)
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

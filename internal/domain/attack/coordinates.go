package attack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sort_attack_list/internal/app"

	"github.com/spf13/cast"
)

// TargetPosition reads the target coordinate of a record.
//
// Coordinates may be JSON integers, fractional numbers (truncated toward
// zero), base-10 integer strings or booleans. JSON numbers outside the int
// range are rejected. A missing or unreadable coordinate
// yields a *app.MalformedRecordError with Index left at zero; the stages
// fill in the record's position.
func TargetPosition(record app.AttackRecord) (app.Position, error) {
	x, err := coordinate(record, app.FieldTargetX)
	if err != nil {
		return app.Position{}, err
	}
	y, err := coordinate(record, app.FieldTargetY)
	if err != nil {
		return app.Position{}, err
	}
	return app.Position{X: x, Y: y}, nil
}

// targetPositionAt is TargetPosition with the record index attached to errors
func targetPositionAt(index int, record app.AttackRecord) (app.Position, error) {
	pos, err := TargetPosition(record)
	if err != nil {
		var malformed *app.MalformedRecordError
		if errors.As(err, &malformed) {
			malformed.Index = index
		}
		return app.Position{}, err
	}
	return pos, nil
}

func coordinate(record app.AttackRecord, field string) (int, error) {
	raw, ok := record.Get(field)
	if !ok {
		return 0, &app.MalformedRecordError{Field: field}
	}

	n, err := coerceInt(raw)
	if err != nil {
		return 0, &app.MalformedRecordError{Field: field, Value: string(raw), Err: err}
	}
	return n, nil
}

// coerceInt converts a raw JSON scalar into an int
func coerceInt(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return 0, fmt.Errorf("invalid JSON value: %w", err)
	}

	switch v := value.(type) {
	case nil:
		return 0, errors.New("value is null")
	case json.Number:
		return numberToInt(v)
	case string:
		// base 10 only: no prefixes, underscores or fractions
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not a base-10 integer", v)
		}
		return n, nil
	case bool:
		return cast.ToIntE(v)
	default:
		return 0, fmt.Errorf("unsupported value of type %T", v)
	}
}

func numberToInt(num json.Number) (int, error) {
	if n, err := num.Int64(); err == nil {
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("%s overflows int", num)
		}
		return int(n), nil
	}

	f, err := num.Float64()
	if err != nil {
		return 0, err
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%s overflows int", num)
	}
	return int(math.Trunc(f)), nil
}

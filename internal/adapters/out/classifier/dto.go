package classifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedOrderID is returned when a get_order answer carries an order_id
// that is neither a number, a numeric string nor null.
var ErrMalformedOrderID = errors.New("malformed order_id")

// PredictRequest is the body posted to the classifier.
type PredictRequest struct {
	Message string `json:"message"`
}

// PredictResponse is the classifier's answer. OrderID is kept raw and only
// decoded for get_order answers.
type PredictResponse struct {
	Intent  string          `json:"intent"`
	OrderID json.RawMessage `json:"order_id"`
}

var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d{1,3})?$`)

// orderID is a decoded order_id. A positive id that fits int64 sets number;
// a positive numeric id no order can carry (too large, fractional) sets
// reference instead.
type orderID struct {
	number    int64
	reference string
}

func (id orderID) isAbsent() bool {
	return id.number == 0 && id.reference == ""
}

// decodeOrderID accepts an integer, a float, a numeric string or null.
// Zero, negative and empty values are treated as absent.
func decodeOrderID(data json.RawMessage) (orderID, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return orderID{}, nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return orderID{}, fmt.Errorf("%w: %w", ErrMalformedOrderID, err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return orderID{}, nil
		}
	} else {
		raw = string(data)
	}

	return parseOrderID(raw)
}

func parseOrderID(raw string) (orderID, error) {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if v < 1 {
			return orderID{}, nil
		}
		return orderID{number: v}, nil
	}

	// Arbitrary precision keeps digits beyond float64 intact, e.g. 12345678901234567890.
	if !decimalNumber.MatchString(raw) {
		return orderID{}, fmt.Errorf("%w: %q", ErrMalformedOrderID, raw)
	}
	r, ok := new(big.Rat).SetString(raw)
	if !ok {
		return orderID{}, fmt.Errorf("%w: %q", ErrMalformedOrderID, raw)
	}
	if r.Sign() < 1 {
		return orderID{}, nil
	}

	if r.IsInt() {
		n := r.Num()
		if n.IsInt64() {
			return orderID{number: n.Int64()}, nil
		}
		return orderID{reference: n.String()}, nil
	}

	f, _ := r.Float64()
	if math.IsInf(f, 0) {
		return orderID{reference: raw}, nil
	}
	return orderID{reference: strconv.FormatFloat(f, 'f', -1, 64)}, nil
}

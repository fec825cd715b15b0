package request

import (
	"encoding/json"
	"strings"

	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/materiallist"
)

// Number is a lenient numeric field. It accepts JSON numbers and numeric
// strings ("1,250.50"); anything unparsable, negative or non-finite decodes
// to 0 instead of failing the request.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(materiallist.Coerce(catalog.Number(v)))
	return nil
}

func (n *Number) Float() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}

// YesNo carries the "include price?" answer. It accepts booleans and the
// strings yes/no/true/false/1/0; a missing answer means no.
type YesNo bool

func (y *YesNo) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*y = false
		return nil
	}
	switch t := v.(type) {
	case bool:
		*y = YesNo(t)
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "y", "true", "1", "on":
			*y = true
		default:
			*y = false
		}
	case float64:
		*y = t != 0
	default:
		*y = false
	}
	return nil
}

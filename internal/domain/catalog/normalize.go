package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// maxExcelSerial is 9999-12-31, the last date Excel can store.
const maxExcelSerial = 2958465

// Normalize is the comparison key for descriptions: trimmed and lowercased.
func Normalize(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Number coerces a loosely typed value into a float. Strings may carry
// thousands separators or a currency sign. Anything unparsable, NaN or
// infinite becomes 0.
func Number(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "$")
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"2-Jan-06",
	"Jan-06",
	"01-02-06",
	"Mon, 02 Jan 2006 15:04:05 MST",
}

// Date parses the date formats found in supplier sheets and JSON payloads.
// Unknown values yield the zero time, which sorts before every real date.
func Date(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case *time.Time:
		if d != nil {
			return *d
		}
	case float64, float32, int, int32, int64, json.Number:
		return serialDate(Number(d))
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return serialDate(f)
		}
	}
	return time.Time{}
}

// serialDate converts an Excel serial date (1900 date system).
func serialDate(serial float64) time.Time {
	if serial <= 0 || serial > maxExcelSerial {
		return time.Time{}
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}
	}
	return t
}

package backpack

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// mergeParams folds query and body parameters into one mapping. On key
// collision the body value wins, matching apply-body-over-query
// precedence. The inputs are never mutated.
func mergeParams(query, body map[string]any) map[string]any {
	merged := make(map[string]any, len(query)+len(body))
	for k, v := range query {
		merged[k] = v
	}
	for k, v := range body {
		merged[k] = v
	}
	return merged
}

// formatParamValue stringifies a parameter value in the plain decimal
// form the venue expects. No locale formatting, no exponent notation
// for decimals.
func formatParamValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// encodeParams renders the canonical query-string form of params with
// keys ascending and standard query escaping.
func encodeParams(params map[string]any) string {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, formatParamValue(v))
	}
	return values.Encode()
}

// composeMessage builds the exact byte string the venue verifies:
// instruction clause first when present, then the sorted parameters,
// always terminated by the timestamp/window clause.
func composeMessage(instruction string, params map[string]any, timestampMillis, windowMillis int64) string {
	message := "timestamp=" + strconv.FormatInt(timestampMillis, 10) +
		"&window=" + strconv.FormatInt(windowMillis, 10)
	if encoded := encodeParams(params); encoded != "" {
		message = encoded + "&" + message
	}
	if instruction != "" {
		message = "instruction=" + instruction + "&" + message
	}
	return message
}

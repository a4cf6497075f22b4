package babel

import (
	"fmt"
	"strconv"
	"strings"
)

// M is a substitution-variable map for translated messages.
type M map[string]any

// expandPercent replaces gettext-style named percent escapes in s with
// values from vars:
//
//	expandPercent("Hello %(name)s!", M{"name": "World"})  // "Hello World!"
//
// Supported verbs are s, v, d, x, X, f, e, g. "%%" unescapes to "%".
// Escapes whose name is missing from vars, and bare positional escapes like
// "%s", are left untouched so messages with literal percent sequences stay
// intact.
func expandPercent(s string, vars M) string {
	if len(vars) == 0 || !strings.ContainsRune(s, '%') {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '%' {
			sb.WriteByte(ch)
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			sb.WriteByte('%')
			i++
			continue
		}
		if i+1 >= len(s) || s[i+1] != '(' {
			sb.WriteByte(ch)
			continue
		}

		end := strings.IndexByte(s[i+2:], ')')
		if end < 0 || i+2+end+1 >= len(s) {
			sb.WriteByte(ch)
			continue
		}

		name := s[i+2 : i+2+end]
		verb := s[i+2+end+1]
		value, ok := vars[name]
		if !ok || !isPercentVerb(verb) {
			sb.WriteByte(ch)
			continue
		}

		sb.WriteString(formatPercentValue(value, verb))
		i += 2 + end + 1
	}

	return sb.String()
}

func isPercentVerb(verb byte) bool {
	switch verb {
	case 's', 'v', 'd', 'x', 'X', 'f', 'e', 'g':
		return true
	}
	return false
}

func formatPercentValue(value any, verb byte) string {
	switch verb {
	case 's', 'v':
		return fmt.Sprint(value)
	case 'd', 'x', 'X':
		if n, ok := toInt64(value); ok {
			return fmt.Sprintf("%"+string(verb), n)
		}
		return fmt.Sprint(value)
	case 'f', 'e', 'g':
		if f, ok := toFloat64(value); ok {
			return strconv.FormatFloat(f, verb, -1, 64)
		}
		return fmt.Sprint(value)
	}
	return fmt.Sprint(value)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		// JSON round-trips land numbers here.
		return int64(v), true
	}
	return 0, false
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		if n, ok := toInt64(value); ok {
			return float64(n), true
		}
	}
	return 0, false
}

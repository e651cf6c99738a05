package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func joinEach(count int, sep string, fn func(i int) string) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fn(i)
	}
	return strings.Join(parts, sep)
}

// resultTypes is "R0, R1, ..."
func resultTypes(count int) string {
	return prefixedStrings("R", count)
}

// namedResults is "r0 R0, r1 R1, ..."
func namedResults(count int) string {
	return joinEach(count, ", ", func(i int) string {
		n := strconv.Itoa(i)
		return "r" + n + " R" + n
	})
}

// connParams is "c0 Connection[S, R0], c1 Connection[S, R1], ..."
func connParams(count int) string {
	return joinEach(count, ", ", func(i int) string {
		n := strconv.Itoa(i)
		return "c" + n + " Connection[S, R" + n + "]"
	})
}

// connSlots is "c0.slot, c1.slot, ..."
func connSlots(count int) string {
	return joinEach(count, ", ", func(i int) string {
		return "c" + strconv.Itoa(i) + ".slot"
	})
}

// futureFields is "a.f0, a.f1, ..."
func futureFields(count int) string {
	return prefixedStrings("a.f", count)
}

// futureValues is "a.f0.val, a.f1.val, ..."
func futureValues(count int) string {
	return joinEach(count, ", ", func(i int) string {
		return "a.f" + strconv.Itoa(i) + ".val"
	})
}

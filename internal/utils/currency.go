package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders an amount as Indian Rupees with en-IN digit grouping:
// the last three integer digits form one group, every pair before that gets
// its own separator. 1234567.5 -> "₹12,34,567.50".
func FormatINR(amount float64) string {
	neg := math.Signbit(amount)
	amount = math.Abs(amount)

	// Round to paise first so 99.999 doesn't group as 99 then print 100.00
	amount = math.Round(amount*100) / 100

	whole := int64(amount)
	paise := int64(math.Round((amount - float64(whole)) * 100))

	return fmt.Sprintf("%s₹%s.%02d", signPrefix(neg), groupIndian(whole), paise)
}

func signPrefix(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

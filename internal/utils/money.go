package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPeso renders an integer peso amount with thousand separators.
func FormatPeso(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₱%s", sign, formatThousand(amount))
}

// RoundTo rounds an amount to the nearest multiple of granularity
// (e.g. nearest ₱50). Granularity below 1 is treated as 1.
func RoundTo(amount, granularity int64) int64 {
	if granularity <= 1 {
		return amount
	}
	half := granularity / 2
	if amount < 0 {
		return -RoundTo(-amount, granularity)
	}
	return (amount + half) / granularity * granularity
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

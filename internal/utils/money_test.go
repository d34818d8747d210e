package utils

import "testing"

func TestFormatPeso(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₱0"},
		{950, "₱950"},
		{25200, "₱25,200"},
		{1234567, "₱1,234,567"},
		{-4500, "-₱4,500"},
	}
	for _, c := range cases {
		if got := FormatPeso(c.amount); got != c.want {
			t.Fatalf("FormatPeso(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		amount, granularity, want int64
	}{
		{1724, 50, 1700},
		{1725, 50, 1750},
		{431, 50, 450},
		{99, 100, 100},
		{-1724, 50, -1700},
		{77, 1, 77},
	}
	for _, c := range cases {
		if got := RoundTo(c.amount, c.granularity); got != c.want {
			t.Fatalf("RoundTo(%d, %d) = %d, want %d", c.amount, c.granularity, got, c.want)
		}
	}
}

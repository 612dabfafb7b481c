package ui

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// sizeStr renders a byte count in SI units to match ceph's 1000-based
// accounting. Absent renders empty, never as zero.
func sizeStr(v *uint64) string {
	if v == nil {
		return ""
	}
	return humanize.Bytes(*v)
}

// countStr renders an entry count with an SI suffix ("1.2 M").
func countStr(v *uint64) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(humanize.SIWithDigits(float64(*v), 1, ""))
}

// fractionOf scales a value against the listing maximum for gauge fill.
func fractionOf(v *uint64, max uint64) float64 {
	if v == nil || max == 0 {
		return 0
	}
	return float64(*v) / float64(max)
}

// percentOf gives a value's share of the directory total for the gauge
// label, nil when the value itself is unknown. An unknown or zero total
// reads as share zero, mirroring how the totals are displayed.
func percentOf(v, total *uint64) *float64 {
	if v == nil {
		return nil
	}
	var share float64
	if total != nil && *total > 0 {
		share = float64(*v) / float64(*total)
	}
	return &share
}

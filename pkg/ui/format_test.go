package ui

import "testing"

func u64(v uint64) *uint64 { return &v }

func TestSizeStr(t *testing.T) {
	tests := []struct {
		in   *uint64
		want string
	}{
		{nil, ""},
		{u64(0), "0 B"},
		{u64(999), "999 B"},
		{u64(1500), "1.5 kB"},
		{u64(82000000), "82 MB"},
	}
	for _, tt := range tests {
		if got := sizeStr(tt.in); got != tt.want {
			t.Errorf("sizeStr(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountStrAbsent(t *testing.T) {
	if got := countStr(nil); got != "" {
		t.Errorf("countStr(nil) = %q, want empty", got)
	}
	if got := countStr(u64(0)); got == "" {
		t.Error("countStr(0) empty; zero is a real measurement")
	}
}

func TestFractionOf(t *testing.T) {
	if got := fractionOf(u64(50), 200); got != 0.25 {
		t.Errorf("fractionOf = %v, want 0.25", got)
	}
	if got := fractionOf(nil, 200); got != 0 {
		t.Errorf("fractionOf(absent) = %v, want 0", got)
	}
	if got := fractionOf(u64(50), 0); got != 0 {
		t.Errorf("fractionOf(max=0) = %v, want 0", got)
	}
}

func TestPercentOf(t *testing.T) {
	if got := percentOf(nil, u64(100)); got != nil {
		t.Errorf("percentOf(absent) = %v, want nil", *got)
	}
	if got := percentOf(u64(25), u64(100)); got == nil || *got != 0.25 {
		t.Errorf("percentOf = %v, want 0.25", got)
	}
	if got := percentOf(u64(25), nil); got == nil || *got != 0 {
		t.Errorf("percentOf(total absent) = %v, want present zero", got)
	}
}

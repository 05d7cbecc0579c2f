package sysmon

import (
	"strings"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.Load1 < 0 {
		t.Errorf("Load1 negative: %f", s.Load1)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestKernelString(t *testing.T) {
	ks := KernelString()
	if ks == "" {
		t.Fatal("KernelString() returned an empty string")
	}
	if strings.ContainsRune(ks, 0) {
		t.Errorf("KernelString() contains NUL bytes: %q", ks)
	}
	if len(strings.Fields(ks)) < 2 {
		t.Errorf("KernelString() = %q, want at least system and release fields", ks)
	}
}

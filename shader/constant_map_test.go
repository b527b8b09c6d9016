package shader

import (
	"testing"

	"github.com/gogpu/xenos/ir"
)

func mapWithFloats(constants ...uint32) ConstantRegisterMap {
	var m ConstantRegisterMap
	for _, c := range constants {
		m.addFloatConstant(c)
	}
	m.seal()
	return m
}

func TestPackedFloatConstantIndex(t *testing.T) {
	m := mapWithFloats(3, 5, 130)
	if m.FloatCount != 3 {
		t.Fatalf("FloatCount = %d, want 3", m.FloatCount)
	}

	tests := []struct {
		c     uint32
		want  uint32
		found bool
	}{
		{3, 0, true},
		{5, 1, true},
		{130, 2, true},
		{4, ir.NotFound, false},
		{0, ir.NotFound, false},
		{255, ir.NotFound, false},
		{256, ir.NotFound, false},
		{1000, ir.NotFound, false},
	}
	for _, tt := range tests {
		got, found := m.PackedFloatConstantIndex(tt.c)
		if got != tt.want || found != tt.found {
			t.Errorf("PackedFloatConstantIndex(%d) = (%d, %v), want (%d, %v)", tt.c, got, found, tt.want, tt.found)
		}
	}
}

func TestPackedFloatConstantIndex_Dynamic(t *testing.T) {
	var m ConstantRegisterMap
	m.addFloatConstant(7)
	m.FloatDynamicAddressing = true
	m.seal()

	if m.FloatCount != FloatConstantWindow {
		t.Errorf("FloatCount = %d, want %d", m.FloatCount, FloatConstantWindow)
	}
	for c := uint32(0); c < FloatConstantWindow; c++ {
		got, found := m.PackedFloatConstantIndex(c)
		if !found || got != c {
			t.Fatalf("PackedFloatConstantIndex(%d) = (%d, %v), want (%d, true)", c, got, found, c)
		}
	}
	if _, found := m.PackedFloatConstantIndex(FloatConstantWindow); found {
		t.Error("index past the window must not be found with dynamic addressing")
	}
}

func TestPackedFloatConstantIndex_Bijection(t *testing.T) {
	var used []uint32
	for c := uint32(0); c < FloatConstantWindow; c += 7 {
		used = append(used, c)
	}
	m := mapWithFloats(used...)
	if int(m.FloatCount) != len(used) {
		t.Fatalf("FloatCount = %d, want %d", m.FloatCount, len(used))
	}
	for want, c := range used {
		got, found := m.PackedFloatConstantIndex(c)
		if !found || got != uint32(want) {
			t.Errorf("PackedFloatConstantIndex(%d) = (%d, %v), want (%d, true)", c, got, found, want)
		}
	}
}

func TestConstantRegisterMap_FloatWindowWraps(t *testing.T) {
	m := mapWithFloats(256 + 9)
	if !m.UsesFloatConstant(9) {
		t.Error("float constant 265 should be recorded as 9 in the window")
	}
	if m.FloatCount != 1 {
		t.Errorf("FloatCount = %d, want 1", m.FloatCount)
	}
}

func TestConstantRegisterMap_BoolAndLoop(t *testing.T) {
	var m ConstantRegisterMap
	m.addBoolConstant(0)
	m.addBoolConstant(200)
	m.addBoolConstant(256)
	m.addLoopConstant(31)
	m.addLoopConstant(32)

	if !m.UsesBoolConstant(0) || !m.UsesBoolConstant(200) {
		t.Error("bool constants 0 and 200 should be used")
	}
	if m.UsesBoolConstant(1) || m.UsesBoolConstant(256) {
		t.Error("bool constants 1 and 256 should not be used")
	}
	if !m.UsesLoopConstant(31) || m.UsesLoopConstant(0) || m.UsesLoopConstant(32) {
		t.Errorf("LoopBitmap = %#x, want only bit 31", uint32(m.LoopBitmap))
	}
}

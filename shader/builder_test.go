package shader

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/gogpu/xenos/ir"
	"github.com/gogpu/xenos/ucode"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestBuilder_CopiesInput(t *testing.T) {
	words := []uint32{1, 2, 3}
	b := New(ucode.ShaderTypeVertex, 0xfeed, words, WithLogger(discardLogger()))
	words[0] = 99
	binary := []byte("spirv")
	b.SetTranslatedBinary(binary)
	binary[0] = 'X'
	s := b.Finish(true)

	if diff := cmp.Diff([]uint32{1, 2, 3}, s.UcodeData()); diff != "" {
		t.Errorf("UcodeData() mismatch (-want, +got):\n%s", diff)
	}
	if got := s.TranslatedBinaryString(); got != "spirv" {
		t.Errorf("TranslatedBinaryString() = %q, want %q", got, "spirv")
	}
	if s.UcodeDwordCount() != 3 || s.UcodeDataHash() != 0xfeed || s.Type() != ucode.ShaderTypeVertex {
		t.Errorf("identity = (%d, %#x, %v), want (3, 0xfeed, vertex)", s.UcodeDwordCount(), s.UcodeDataHash(), s.Type())
	}
}

func TestBuilder_Validity(t *testing.T) {
	tests := []struct {
		name       string
		translated bool
		errors     []Error
		wantValid  bool
	}{
		{"translated", true, nil, true},
		{"not translated", false, nil, false},
		{"warning only", true, []Error{{IsFatal: false, Message: "odd swizzle"}}, true},
		{"fatal", true, []Error{{IsFatal: false, Message: "odd"}, {IsFatal: true, Message: "bad"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(ucode.ShaderTypePixel, 0, nil, WithLogger(discardLogger()))
			for _, e := range tt.errors {
				b.AddError(e.IsFatal, e.Message)
			}
			s := b.Finish(tt.translated)
			if s.IsValid() != tt.wantValid {
				t.Errorf("IsValid() = %v, want %v", s.IsValid(), tt.wantValid)
			}
			if s.IsTranslated() != tt.translated {
				t.Errorf("IsTranslated() = %v, want %v", s.IsTranslated(), tt.translated)
			}
			if diff := cmp.Diff(tt.errors, s.Errors()); diff != "" {
				t.Errorf("Errors() mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestBuilder_LogsErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	b := New(ucode.ShaderTypePixel, 0xab, nil, WithLogger(logrus.NewEntry(logger)))
	b.AddErrorf(true, "color target %d out of range", 5)
	b.AddError(false, "unused interpolator")

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	if entries[0].Level != logrus.ErrorLevel || entries[0].Message != "color target 5 out of range" {
		t.Errorf("entry 0 = (%v, %q)", entries[0].Level, entries[0].Message)
	}
	if entries[1].Level != logrus.WarnLevel {
		t.Errorf("entry 1 level = %v, want warning", entries[1].Level)
	}
	if got := entries[0].Data["hash"]; got != "00000000000000ab" {
		t.Errorf("hash field = %v, want 00000000000000ab", got)
	}
	if got := entries[0].Data["stage"]; got != "pixel" {
		t.Errorf("stage field = %v, want pixel", got)
	}
}

func TestBuilder_FinishFreezes(t *testing.T) {
	b := New(ucode.ShaderTypeVertex, 0, nil, WithLogger(discardLogger()))
	b.SetHostVertexShaderType(HostVertexShaderQuadDomainAdaptive)
	b.SetUcodeDisassembly("exec")
	b.SetHostDisassembly("host")
	b.SetHostErrorLog("")
	b.SetHostBinary([]byte{1})
	s := b.Finish(true)

	if s.HostVertexShaderType() != HostVertexShaderQuadDomainAdaptive {
		t.Errorf("HostVertexShaderType() = %v", s.HostVertexShaderType())
	}
	if s.UcodeDisassembly() != "exec" || s.HostDisassembly() != "host" || len(s.HostBinary()) != 1 {
		t.Error("translation outputs were not stored")
	}

	defer func() {
		if recover() == nil {
			t.Error("mutating a finished Builder did not panic")
		}
	}()
	b.AddError(true, "late")
}

func TestShaderDump(t *testing.T) {
	b := New(ucode.ShaderTypeVertex, 0x42, []uint32{0}, WithLogger(discardLogger()))
	b.Gather(nil)
	b.AddError(true, "broken")
	out := b.Finish(true).Dump()
	for _, want := range []string{"0000000000000042", "ConstantRegisterMap", "broken", "IsValid: (bool) false"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}
}

func TestHostVertexShaderTypeString(t *testing.T) {
	if got := HostVertexShaderTriangleDomainConstant.String(); got != "triangle_domain_constant" {
		t.Errorf("String() = %q", got)
	}
	if got := HostVertexShaderType(42).String(); got != "HostVertexShaderType(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestShader_AccessorsReturnCopies(t *testing.T) {
	b := New(ucode.ShaderTypeVertex, 0, []uint32{1, 2}, WithLogger(discardLogger()))
	b.Gather([]ir.Instruction{
		vfetch(0, 95, 0, 1, ucode.VertexFormat32Float),
		tfetch(ucode.FetchTexture, 3, ucode.TextureDimension2D),
		memExport(7),
	})
	b.AddError(true, "boom")
	b.SetTranslatedBinary([]byte("dxbc"))
	b.SetHostBinary([]byte{5})
	s := b.Finish(true)

	s.UcodeData()[0] = 99
	s.VertexBindings()[0].StrideWords = 42
	s.VertexBindings()[0].Attributes[0].SizeWords = 42
	s.TextureBindings()[0].FetchConstant = 42
	s.MemExportStreamConstants()[0] = 42
	s.Errors()[0].IsFatal = false
	s.TranslatedBinary()[0] = 'X'
	s.HostBinary()[0] = 42

	if got := s.UcodeData()[0]; got != 1 {
		t.Errorf("UcodeData()[0] = %d after writing to a returned slice, want 1", got)
	}
	vb := s.VertexBindings()[0]
	if vb.StrideWords != 1 || vb.Attributes[0].SizeWords != 1 {
		t.Errorf("VertexBindings()[0] = %+v after writing to a returned slice", vb)
	}
	if got := s.TextureBindings()[0].FetchConstant; got != 3 {
		t.Errorf("TextureBindings()[0].FetchConstant = %d, want 3", got)
	}
	if diff := cmp.Diff([]uint32{7}, s.MemExportStreamConstants()); diff != "" {
		t.Errorf("MemExportStreamConstants() mismatch (-want, +got):\n%s", diff)
	}
	if !s.HasFatalError() || s.IsValid() {
		t.Errorf("HasFatalError() = %v, IsValid() = %v; want true, false", s.HasFatalError(), s.IsValid())
	}
	if got := s.TranslatedBinaryString(); got != "dxbc" {
		t.Errorf("TranslatedBinaryString() = %q, want dxbc", got)
	}
	if got := s.HostBinary()[0]; got != 5 {
		t.Errorf("HostBinary()[0] = %d, want 5", got)
	}
}

func TestShaderDump_NestedBindings(t *testing.T) {
	b := New(ucode.ShaderTypeVertex, 0, nil, WithLogger(discardLogger()))
	b.Gather([]ir.Instruction{vfetch(0, 95, 0, 3, ucode.VertexFormat323232Float)})
	out := b.Finish(true).Dump()
	if !strings.Contains(out, "DataFormat: (ucode.VertexFormat) 57") {
		t.Errorf("Dump() does not render fetch attributes of vertex bindings:\n%s", out)
	}
}

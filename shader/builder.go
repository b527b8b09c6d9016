package shader

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/gogpu/xenos/ucode"
)

// Builder accumulates the derived data of a shader while it is being
// translated. It is owned by a single translation pass and must not be
// shared between goroutines.
type Builder struct {
	s   *Shader
	log *logrus.Entry
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the entry recorded errors are logged to. By default
// they go to the standard logrus logger.
func WithLogger(entry *logrus.Entry) Option {
	return func(b *Builder) {
		if entry != nil {
			b.log = entry
		}
	}
}

// New starts a shader of the given type from microcode words in host
// endianness. The words are copied. hash identifies the microcode and is
// only carried along.
func New(typ ucode.ShaderType, hash uint64, words []uint32, opts ...Option) *Builder {
	b := &Builder{
		s: &Shader{
			shaderType:    typ,
			ucodeData:     slices.Clone(words),
			ucodeDataHash: hash,
		},
		log: logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.WithFields(logrus.Fields{
		"hash":  fmt.Sprintf("%016x", hash),
		"stage": typ.String(),
	})
	return b
}

func (b *Builder) mustBeOpen() *Shader {
	if b.s == nil {
		panic("shader: Builder used after Finish")
	}
	return b.s
}

// AddError records a translation problem. Fatal errors make the shader
// invalid.
func (b *Builder) AddError(fatal bool, msg string) {
	s := b.mustBeOpen()
	s.errors = append(s.errors, Error{IsFatal: fatal, Message: msg})
	if fatal {
		b.log.Error(msg)
	} else {
		b.log.Warn(msg)
	}
}

// AddErrorf is AddError with a format string.
func (b *Builder) AddErrorf(fatal bool, format string, args ...any) {
	b.AddError(fatal, fmt.Sprintf(format, args...))
}

// SetHostVertexShaderType sets the host role of a vertex shader.
func (b *Builder) SetHostVertexShaderType(t HostVertexShaderType) {
	b.mustBeOpen().hostVertexShaderType = t
}

// SetUcodeDisassembly stores the D3D-format microcode disassembly.
func (b *Builder) SetUcodeDisassembly(text string) {
	b.mustBeOpen().ucodeDisassembly = text
}

// SetTranslatedBinary stores the translator output.
func (b *Builder) SetTranslatedBinary(data []byte) {
	b.mustBeOpen().translatedBinary = slices.Clone(data)
}

// SetHostDisassembly stores the host's disassembly of the translation.
func (b *Builder) SetHostDisassembly(text string) {
	b.mustBeOpen().hostDisassembly = text
}

// SetHostErrorLog stores errors from preparing the host shader.
func (b *Builder) SetHostErrorLog(text string) {
	s := b.mustBeOpen()
	s.hostErrorLog = text
	if text != "" {
		b.log.WithField("host_log", text).Debug("host shader preparation reported errors")
	}
}

// SetHostBinary stores a host binary that can be reused across runs.
func (b *Builder) SetHostBinary(data []byte) {
	b.mustBeOpen().hostBinary = slices.Clone(data)
}

// Finish freezes the shader. translated tells whether translation ran to
// completion; the shader is valid only if it did and no fatal error was
// recorded. The Builder cannot be used afterwards.
func (b *Builder) Finish(translated bool) *Shader {
	s := b.mustBeOpen()
	s.isTranslated = translated
	s.isValid = translated && !s.HasFatalError()
	b.s = nil
	b.log.WithFields(logrus.Fields{
		"valid":    s.isValid,
		"errors":   len(s.errors),
		"bindings": len(s.vertexBindings) + len(s.textureBindings),
	}).Debug("shader finished")
	return s
}

// Package xenos analyzes Xbox 360 GPU shader microcode.
//
// A shader reaches this package as its microcode dwords together with the
// instructions a decoder produced from them, expressed in the ir package.
// Analysis validates the instructions and derives everything a host
// translator needs to know up front: vertex and texture bindings, constant
// register usage, export writes and addressing requirements.
//
// Example usage:
//
//	s, err := xenos.Analyze(ctx, xenos.Source{
//	    Type:         ucode.ShaderTypePixel,
//	    Hash:         hash,
//	    Words:        words,
//	    Instructions: instrs,
//	}, xenos.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tb := range s.TextureBindings() {
//	    fmt.Println(tb.FetchConstant, tb.FetchInstr.OpcodeName())
//	}
//
// Shaders are independent of each other, so AnalyzeAll processes a batch
// concurrently.
package xenos

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/xenos/ir"
	"github.com/gogpu/xenos/shader"
	"github.com/gogpu/xenos/ucode"
)

// ErrNilContext is returned when Analyze or AnalyzeAll is given a nil
// context.
var ErrNilContext = errors.New("xenos: nil context")

// Options configures shader analysis.
type Options struct {
	// Validate checks the instructions before gathering. Validation
	// errors are recorded as fatal shader errors.
	Validate bool

	// Parallelism limits how many shaders AnalyzeAll works on at once.
	// Zero or less means no limit.
	Parallelism int

	// Logger receives recorded shader errors. Nil means the standard
	// logrus logger.
	Logger *logrus.Entry
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Validate:    true,
		Parallelism: 8,
	}
}

// Source is one shader to analyze.
type Source struct {
	Type ucode.ShaderType
	// Content hash of Words, carried along for identification.
	Hash uint64
	// Microcode in host endianness.
	Words []uint32
	// Decoded instructions, control flow and ALU/fetch interleaved in
	// execution order.
	Instructions []ir.Instruction
}

// Analyze builds the shader for src.
//
// The pipeline is:
//  1. Validate the instructions (if enabled)
//  2. Gather bindings and register usage
//  3. Freeze the shader
//
// Invalid instructions do not make Analyze fail; they are recorded on the
// shader, which is then not valid. An error is returned only if ctx is
// nil or done.
func Analyze(ctx context.Context, src Source, opts Options) (*shader.Shader, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	b := shader.New(src.Type, src.Hash, src.Words, shader.WithLogger(log))

	if opts.Validate {
		for _, e := range ir.Validate(src.Instructions) {
			b.AddError(true, e.Error())
		}
	}
	b.Gather(src.Instructions)
	return b.Finish(true), nil
}

// AnalyzeAll analyzes independent shaders concurrently. The result has one
// shader per source, in order. If ctx is cancelled, analysis stops between
// shaders and the context error is returned.
func AnalyzeAll(ctx context.Context, sources []Source, opts Options) ([]*shader.Shader, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	shaders := make([]*shader.Shader, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}

	base := opts.Logger
	if base == nil {
		base = logrus.NewEntry(logrus.StandardLogger())
	}
	for i := range sources {
		i := i
		g.Go(func() error {
			o := opts
			o.Logger = base.WithField("source", i)
			s, err := Analyze(gctx, sources[i], o)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			shaders[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return shaders, nil
}

package compiler

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/KromDaniel/thompson/internal/codegen"
	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/dave/jennifer/jen"
)

// MaxBitsetStates is the largest automaton whose state sets fit a uint64.
// Larger automata are generated with []bool state sets.
const MaxBitsetStates = 64

// GenerateConfig holds the configuration for code generation.
type GenerateConfig struct {
	Pattern        string   // Source pattern, recorded in the file header
	Name           string   // Exported type name of the generated matcher
	Package        string   // Package clause of the generated file
	OutputFile     string   // Path of the generated file
	TestFileInputs []string // If set, a _test.go file asserting these inputs is written too
	ForceSliceSets bool     // Use []bool state sets even when a bitset would fit
}

// Validate checks if the configuration is usable.
func (c GenerateConfig) Validate() error {
	if !codegen.IsIdentifier(c.Name) || !codegen.IsExported(c.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", c.Name)
	}
	if !codegen.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a Go identifier", c.Package)
	}
	return nil
}

// Generator emits Go source for a matcher equivalent to a reduced automaton.
// The generated code runs the same subset simulation over static tables and
// has no dependency on this module.
type Generator struct {
	config    GenerateConfig
	automaton *nfa.Automaton
	logger    *Logger
	useBitset bool
}

// NewGenerator validates config and prepares a generator for a.
func NewGenerator(a *nfa.Automaton, config GenerateConfig, logger *Logger) (*Generator, error) {
	if !a.Reduced() {
		return nil, errors.New("automaton has not been reduced")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Generator{
		config:    config,
		automaton: a,
		logger:    logger,
		useBitset: a.NumStates() <= MaxBitsetStates && !config.ForceSliceSets,
	}, nil
}

// File builds the generated source file.
func (g *Generator) File() *jen.File {
	g.logger.Section("Code Generation")
	if g.useBitset {
		g.logger.Log("Generating bitset matcher (states: %d)", g.automaton.NumStates())
	} else {
		g.logger.Log("Generating slice matcher (states: %d)", g.automaton.NumStates())
	}

	f := jen.NewFile(g.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by thompson for pattern %q. DO NOT EDIT.", g.config.Pattern))

	name := g.config.Name
	f.Commentf("%s matches whole inputs against %q.", name, g.config.Pattern)
	f.Type().Id(name).Struct()
	f.Line()
	f.Var().Id("Compiled" + name).Op("=").Id(name).Values()
	f.Line()

	if g.useBitset {
		g.bitsetTables(f)
	} else {
		g.sliceTables(f)
	}

	f.Commentf("MatchString reports whether the whole of input matches %q.", g.config.Pattern)
	f.Func().Params(jen.Id(name)).Id("MatchString").
		Params(jen.Id(codegen.InputName).String()).Bool().
		Block(g.matchBody()...)
	f.Line()
	f.Commentf("MatchBytes reports whether the whole of input matches %q.", g.config.Pattern)
	f.Func().Params(jen.Id(name)).Id("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).Bool().
		Block(g.matchBody()...)
	return f
}

// Render writes the generated source to w.
func (g *Generator) Render(w io.Writer) error {
	return g.File().Render(w)
}

// Generate writes the generated file, and the test file if inputs were
// configured.
func (g *Generator) Generate() error {
	if g.config.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	if err := g.File().Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if len(g.config.TestFileInputs) > 0 {
		path := testFilePath(g.config.OutputFile)
		if err := g.TestFile().Save(path); err != nil {
			return fmt.Errorf("failed to save test file: %w", err)
		}
		g.logger.Log("Wrote test file %s (%d inputs)", path, len(g.config.TestFileInputs))
	}
	return nil
}

// TestFile builds a test file asserting the generated matcher's answer for
// every configured input. Expected values come from the automaton itself.
func (g *Generator) TestFile() *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by thompson for pattern %q. DO NOT EDIT.", g.config.Pattern))

	cases := make([]jen.Code, 0, len(g.config.TestFileInputs))
	for _, in := range g.config.TestFileInputs {
		cases = append(cases, jen.Values(jen.Lit(in), jen.Lit(g.automaton.AcceptsString(in))))
	}

	compiled := jen.Id("Compiled" + g.config.Name)
	f.Func().Id("Test"+g.config.Name+"Match").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Bool(),
		).Values(cases...),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
			jen.If(
				jen.Id("got").Op(":=").Add(compiled).Dot("MatchString").Call(jen.Id("tt").Dot("input")),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchString(%q) = %v, want %v"), jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
			),
			jen.If(
				jen.Id("got").Op(":=").Add(compiled).Dot("MatchBytes").Call(jen.Index().Byte().Parens(jen.Id("tt").Dot("input"))),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchBytes(%q) = %v, want %v"), jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
			),
		),
	)
	return f
}

func testFilePath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_test.go"
}

func (g *Generator) table(suffix string) string {
	return codegen.TableName(g.config.Name, suffix)
}

// byteEdges returns, for state s, the non-empty (byte, targets) pairs in
// ascending byte order.
func (g *Generator) byteEdges(s nfa.StateID) (bytes []int, targets [][]nfa.StateID) {
	for c := 0; c < nfa.AlphabetSize; c++ {
		to := g.automaton.Targets(s, nfa.ByteSymbol(byte(c)))
		if len(to) == 0 {
			continue
		}
		bytes = append(bytes, c)
		targets = append(targets, to)
	}
	return bytes, targets
}

func mask(states []nfa.StateID) uint64 {
	var m uint64
	for _, s := range states {
		m |= 1 << uint(s)
	}
	return m
}

// bitsetTables emits the start and accept masks and, per state with byte
// edges, a map from byte to the mask of epsilon-closed targets.
func (g *Generator) bitsetTables(f *jen.File) {
	a := g.automaton
	f.Const().Defs(
		jen.Id(g.table(codegen.NumStatesSuffix)).Op("=").Lit(a.NumStates()),
		jen.Id(g.table(codegen.StartMaskSuffix)).Op("=").Lit(mask(a.StartClosure())),
		jen.Id(g.table(codegen.AcceptMaskSuffix)).Op("=").Lit(uint64(1)<<uint(a.Accept())),
	)
	f.Line()

	rows := jen.Dict{}
	for s := 0; s < a.NumStates(); s++ {
		bytes, targets := g.byteEdges(nfa.StateID(s))
		if len(bytes) == 0 {
			continue
		}
		row := jen.Dict{}
		for i, c := range bytes {
			row[jen.Lit(c)] = jen.Lit(mask(targets[i]))
		}
		rows[jen.Lit(s)] = jen.Values(row)
	}
	f.Var().Id(g.table(codegen.DeltaSuffix)).Op("=").
		Index(jen.Id(g.table(codegen.NumStatesSuffix))).Map(jen.Byte()).Uint64().
		Values(rows)
	f.Line()
}

// sliceTables emits the start closure, the accept state and, per state with
// byte edges, a map from byte to the epsilon-closed target list.
func (g *Generator) sliceTables(f *jen.File) {
	a := g.automaton
	f.Const().Defs(
		jen.Id(g.table(codegen.NumStatesSuffix)).Op("=").Lit(a.NumStates()),
		jen.Id(g.table(codegen.AcceptSuffix)).Op("=").Lit(int(a.Accept())),
	)
	f.Line()

	f.Var().Id(g.table(codegen.StartSuffix)).Op("=").Index().Int().Values(stateLits(a.StartClosure())...)
	f.Line()

	rows := jen.Dict{}
	for s := 0; s < a.NumStates(); s++ {
		bytes, targets := g.byteEdges(nfa.StateID(s))
		if len(bytes) == 0 {
			continue
		}
		row := jen.Dict{}
		for i, c := range bytes {
			row[jen.Lit(c)] = jen.Values(stateLits(targets[i])...)
		}
		rows[jen.Lit(s)] = jen.Values(row)
	}
	f.Var().Id(g.table(codegen.DeltaSuffix)).Op("=").
		Index(jen.Id(g.table(codegen.NumStatesSuffix))).Map(jen.Byte()).Index().Int().
		Values(rows)
	f.Line()
}

func stateLits(states []nfa.StateID) []jen.Code {
	lits := make([]jen.Code, len(states))
	for i, s := range states {
		lits[i] = jen.Lit(int(s))
	}
	return lits
}

func (g *Generator) matchBody() []jen.Code {
	if g.useBitset {
		return g.bitsetMatchBody()
	}
	return g.sliceMatchBody()
}

// bitsetMatchBody unrolls one transition check per state that has byte
// edges.
func (g *Generator) bitsetMatchBody() []jen.Code {
	delta := g.table(codegen.DeltaSuffix)

	var transitions []jen.Code
	for s := 0; s < g.automaton.NumStates(); s++ {
		if bytes, _ := g.byteEdges(nfa.StateID(s)); len(bytes) == 0 {
			continue
		}
		transitions = append(transitions,
			jen.If(jen.Id(codegen.CurrentName).Op("&").Lit(uint64(1)<<uint(s)).Op("!=").Lit(0)).Block(
				jen.Id(codegen.NextName).Op("|=").Id(delta).Index(jen.Lit(s)).Index(jen.Id(codegen.ByteName)),
			),
		)
	}

	// Without byte edges any input byte is a dead end.
	loop := []jen.Code{jen.Return(jen.False())}
	if len(transitions) > 0 {
		loop = []jen.Code{
			jen.Id(codegen.ByteName).Op(":=").Id(codegen.InputName).Index(jen.Id(codegen.OffsetName)),
			jen.Var().Id(codegen.NextName).Uint64(),
		}
		loop = append(loop, transitions...)
		loop = append(loop,
			jen.If(jen.Id(codegen.NextName).Op("==").Lit(0)).Block(jen.Return(jen.False())),
			jen.Id(codegen.CurrentName).Op("=").Id(codegen.NextName),
		)
	}

	return []jen.Code{
		jen.Id(codegen.InputLenName).Op(":=").Len(jen.Id(codegen.InputName)),
		jen.Id(codegen.CurrentName).Op(":=").Id(g.table(codegen.StartMaskSuffix)),
		jen.For(
			jen.Id(codegen.OffsetName).Op(":=").Lit(0),
			jen.Id(codegen.OffsetName).Op("<").Id(codegen.InputLenName),
			jen.Id(codegen.OffsetName).Op("++"),
		).Block(loop...),
		jen.Return(jen.Id(codegen.CurrentName).Op("&").Id(g.table(codegen.AcceptMaskSuffix)).Op("!=").Lit(0)),
	}
}

func (g *Generator) sliceMatchBody() []jen.Code {
	numStates := jen.Id(g.table(codegen.NumStatesSuffix))
	cur, next := codegen.CurrentName, codegen.NextName

	return []jen.Code{
		jen.Id(codegen.InputLenName).Op(":=").Len(jen.Id(codegen.InputName)),
		jen.Id(cur).Op(":=").Make(jen.Index().Bool(), numStates),
		jen.Id(next).Op(":=").Make(jen.Index().Bool(), numStates),
		jen.For(jen.List(jen.Id("_"), jen.Id(codegen.StateName)).Op(":=").Range().Id(g.table(codegen.StartSuffix))).Block(
			jen.Id(cur).Index(jen.Id(codegen.StateName)).Op("=").True(),
		),
		jen.For(
			jen.Id(codegen.OffsetName).Op(":=").Lit(0),
			jen.Id(codegen.OffsetName).Op("<").Id(codegen.InputLenName),
			jen.Id(codegen.OffsetName).Op("++"),
		).Block(
			jen.Id(codegen.ByteName).Op(":=").Id(codegen.InputName).Index(jen.Id(codegen.OffsetName)),
			jen.Id("clear").Call(jen.Id(next)),
			jen.Id("alive").Op(":=").False(),
			jen.For(jen.List(jen.Id(codegen.StateName), jen.Id("on")).Op(":=").Range().Id(cur)).Block(
				jen.If(jen.Op("!").Id("on")).Block(jen.Continue()),
				jen.For(jen.List(jen.Id("_"), jen.Id(codegen.TargetName)).Op(":=").Range().
					Id(g.table(codegen.DeltaSuffix)).Index(jen.Id(codegen.StateName)).Index(jen.Id(codegen.ByteName))).Block(
					jen.Id(next).Index(jen.Id(codegen.TargetName)).Op("=").True(),
					jen.Id("alive").Op("=").True(),
				),
			),
			jen.If(jen.Op("!").Id("alive")).Block(jen.Return(jen.False())),
			jen.List(jen.Id(cur), jen.Id(next)).Op("=").List(jen.Id(next), jen.Id(cur)),
		),
		jen.Return(jen.Id(cur).Index(jen.Id(g.table(codegen.AcceptSuffix)))),
	}
}

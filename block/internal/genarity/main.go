// Command genarity emits the per-arity block families.
//
// The engine's calling convention is statically typed per call site, so the
// bridge needs one trampoline, one wrapper family, and one handle family per
// supported arity rather than a runtime-dispatched variadic path. This
// program writes them all; edit the templates here, not the output.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

const maxArity = 12

var words = []string{
	"no", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "twelve",
}

func main() {
	out := flag.String("out", "blocks_gen.go", "output file")
	flag.Parse()

	var b bytes.Buffer
	b.WriteString("// Code generated by internal/genarity. DO NOT EDIT.\n\n")
	b.WriteString("package block\n\n")
	b.WriteString("import (\n\t\"unsafe\"\n\n")
	b.WriteString("\t\"github.com/nativekit/block-runtime/encoding\"\n")
	b.WriteString("\t\"github.com/nativekit/block-runtime/engine\"\n)\n\n")

	for n := 0; n <= maxArity; n++ {
		emit(&b, n)
	}

	src := bytes.TrimRight(b.Bytes(), "\n")
	src = append(src, '\n')
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func emit(b *bytes.Buffer, n int) {
	var as []string
	for i := 0; i < n; i++ {
		as = append(as, fmt.Sprintf("A%d", i))
	}

	params := strings.Join(append(as[:len(as):len(as)], "R"), ", ") + " any"
	args := strings.Join(append(as[:len(as):len(as)], "R"), ", ")
	fnType := "func(" + strings.Join(as, ", ") + ") R"
	invType := "func(" + strings.Join(append([]string{"unsafe.Pointer"}, as...), ", ") + ") R"

	var declArgs, callArgs, invParams, encArgs []string
	invParams = append(invParams, "self unsafe.Pointer")
	encArgs = append(encArgs, "encoding.Block")
	for i := 0; i < n; i++ {
		declArgs = append(declArgs, fmt.Sprintf("a%d A%d", i, i))
		callArgs = append(callArgs, fmt.Sprintf("a%d", i))
		invParams = append(invParams, fmt.Sprintf("a%d A%d", i, i))
		encArgs = append(encArgs, fmt.Sprintf("encoding.TypeOf[A%d]()", i))
	}

	word := words[n]
	noun := "arguments"
	if n == 1 {
		noun = "argument"
	}
	selfArgs := "unsafe.Pointer(b)"
	if n > 0 {
		selfArgs += ", " + strings.Join(callArgs, ", ")
	}

	p := func(format string, a ...any) { fmt.Fprintf(b, format, a...) }

	p("// Block%d is an invocable block taking %s %s.\n", n, word, noun)
	p("type Block%d[%s] struct {\n\th Header\n}\n\n", n, params)

	p("// Call invokes the block through its header's entry point.\n")
	p("func (b *Block%d[%s]) Call(%s) R {\n", n, args, strings.Join(declArgs, ", "))
	p("\tfn := loadFunc[%s](&b.h.invoke)\n", invType)
	p("\treturn fn(%s)\n}\n\n", selfArgs)

	p("// Signature reports the block's type encoding: result, then the block\n")
	p("// itself, then arguments.\n")
	p("func (b *Block%d[%s]) Signature() encoding.Signature {\n", n, args)
	p("\treturn encoding.Signature{\n")
	p("\t\tRet:  encoding.TypeOf[R](),\n")
	p("\t\tArgs: []encoding.Encoding{%s},\n", strings.Join(encArgs, ", "))
	p("\t}\n}\n\n")

	p("// Stack%d is a stack-resident block wrapping a %s-argument Go closure.\n", n, word)
	p("// It has exactly one owner and must not be copied; Promote consumes it.\n")
	p("type Stack%d[%s] struct {\n", n, params)
	p("\tBlock%d[%s]\n\n", n, args)
	p("\tdesc *Descriptor\n")
	p("\tfn   %s\n}\n\n", fnType)

	p("// New%d wraps fn as a stack-resident block. The header's entry point is\n", n)
	p("// the arity-%d trampoline; the pairing is fixed for the block's lifetime.\n", n)
	p("func New%d[%s](fn %s) *Stack%d[%s] {\n", n, params, fnType, n, args)
	p("\tb := &Stack%d[%s]{fn: fn}\n", n, args)
	p("\tb.h = Header{\n")
	p("\t\tisa:    unsafe.Pointer(stackClass),\n")
	p("\t\tflags:  FlagHasCopyDispose,\n")
	p("\t\tinvoke: funcWord(invoke%d[%s]),\n", n, args)
	p("\t}\n")
	p("\tb.desc = &Descriptor{\n")
	p("\t\tsize:    unsafe.Sizeof(*b),\n")
	p("\t\tcopy:    funcWord(copy%d[%s]),\n", n, args)
	p("\t\tdispose: funcWord(dispose%d[%s]),\n", n, args)
	p("\t}\n")
	p("\treturn b\n}\n\n")

	p("// Promote moves the block into engine-owned heap storage and returns an\n")
	p("// owning handle. The receiver is consumed: it is inert after Promote and\n")
	p("// must not be called or promoted again.\n")
	p("func (b *Stack%d[%s]) Promote() *Owned%d[%s] {\n", n, args, n, args)
	p("\tp := promote(unsafe.Pointer(b))\n")
	p("\tb.h = Header{}\n")
	p("\tb.desc = nil\n")
	p("\tb.fn = nil\n")
	p("\treturn &Owned%d[%s]{b: (*Block%d[%s])(p)}\n}\n\n", n, args, n, args)

	p("func invoke%d[%s](%s) R {\n", n, params, strings.Join(invParams, ", "))
	p("\treturn (*Stack%d[%s])(self).fn(%s)\n}\n\n", n, args, strings.Join(callArgs, ", "))

	p("func copy%d[%s](dst, _ unsafe.Pointer) {\n", n, params)
	p("\t// The raw move already relocated the captured state; pin it and the\n")
	p("\t// entry point for the collector.\n")
	p("\tb := (*Stack%d[%s])(dst)\n", n, args)
	p("\tengine.Anchor(dst, b.fn, loadFunc[%s](&b.h.invoke))\n}\n\n", invType)

	p("func dispose%d[%s](p unsafe.Pointer) {\n", n, params)
	p("\t(*Stack%d[%s])(p).fn = nil\n}\n\n", n, args)

	p("// Owned%d is an owning, reference-counted handle to a promoted block\n", n)
	p("// taking %s %s.\n", word, noun)
	p("type Owned%d[%s] struct {\n\tb *Block%d[%s]\n}\n\n", n, params, n, args)

	p("// Adopt%d takes ownership of a promoted block received from the engine\n", n)
	p("// side. The caller becomes responsible for the final Release.\n")
	p("func Adopt%d[%s](p unsafe.Pointer) *Owned%d[%s] {\n", n, params, n, args)
	p("\treturn &Owned%d[%s]{b: (*Block%d[%s])(p)}\n}\n\n", n, args, n, args)

	p("// Call invokes the promoted block.\n")
	p("func (o *Owned%d[%s]) Call(%s) R {\n", n, args, strings.Join(declArgs, ", "))
	p("\treturn o.b.Call(%s)\n}\n\n", strings.Join(callArgs, ", "))

	p("// Signature reports the block's type encoding.\n")
	p("func (o *Owned%d[%s]) Signature() encoding.Signature {\n", n, args)
	p("\treturn o.b.Signature()\n}\n\n")

	p("// Retain returns an additional owning handle to the same block.\n")
	p("func (o *Owned%d[%s]) Retain() *Owned%d[%s] {\n", n, args, n, args)
	p("\tengine.Retain(unsafe.Pointer(o.b))\n")
	p("\treturn &Owned%d[%s]{b: o.b}\n}\n\n", n, args)

	p("// Release drops this handle's ownership and clears it. When the last\n")
	p("// handle goes, the engine disposes the captured state in place and\n")
	p("// frees the block's storage.\n")
	p("func (o *Owned%d[%s]) Release() {\n", n, args)
	p("\tp := unsafe.Pointer(o.b)\n")
	p("\to.b = nil\n")
	p("\tengine.Release(p)\n}\n\n")

	p("// Pointer returns the block's address for handoff across the bridge.\n")
	p("func (o *Owned%d[%s]) Pointer() unsafe.Pointer {\n", n, args)
	p("\treturn unsafe.Pointer(o.b)\n}\n\n")
}

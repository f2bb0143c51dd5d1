package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/term"

	"github.com/nativekit/block-runtime/block"
	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/engine"
)

func main() {
	var (
		className   = flag.String("class", "", "Class to message")
		selName     = flag.String("sel", "", "Selector to send (optional)")
		argStr      = flag.String("args", "", "Arguments (comma-separated)")
		list        = flag.Bool("list", false, "List registered classes and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	registerDemos()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !*list && *className == "" {
		fmt.Fprintln(os.Stderr, "Usage: explore -list")
		fmt.Fprintln(os.Stderr, "       explore -class <name> -sel <selector> [-args a,b]")
		fmt.Fprintln(os.Stderr, "       explore -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*className, *selName, *argStr, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(className, selName, argStr string, listOnly bool) error {
	names := engine.ClassNames()
	fmt.Printf("Registered classes: %d\n\n", len(names))
	for _, name := range names {
		cls, _ := engine.LookupClass(name)
		fmt.Printf("%s\n", name)
		for _, sel := range cls.Selectors() {
			m, _ := cls.InstanceMethod(sel)
			fmt.Printf("  %s\n", formatMethod(sel, m.Signature()))
		}
	}

	if listOnly || className == "" {
		return nil
	}

	cls, ok := engine.LookupClass(className)
	if !ok {
		return fmt.Errorf("class %q not registered", className)
	}
	obj, ok := demoInstance(className)
	if !ok {
		return fmt.Errorf("no demo instance for class %q", className)
	}
	if selName == "" {
		return fmt.Errorf("no selector given (use -sel)")
	}

	sel := engine.RegisterSelector(selName)
	m, ok := cls.InstanceMethod(sel)
	if !ok {
		return fmt.Errorf("class %q does not respond to %q", className, selName)
	}

	args, err := parseArgs(argStr, m.Signature())
	if err != nil {
		return err
	}

	result, err := engine.Send(obj, sel, args...)
	if err != nil {
		return err
	}

	fmt.Printf("\n[%s %s] = %v\n", className, selName, result)
	return nil
}

// formatMethod renders a selector and its type signature the way a
// header would: answer() -> int64, add:to:(int64, int64) -> int64.
func formatMethod(sel engine.Sel, sig encoding.Signature) string {
	var params []string
	for i := 2; i < sig.NumArgs(); i++ {
		enc, _ := sig.Arg(i)
		params = append(params, encTypeStr(enc))
	}
	result := ""
	if sig.Ret != encoding.Void {
		result = " -> " + encTypeStr(sig.Ret)
	}
	return sel.Name() + "(" + strings.Join(params, ", ") + ")" + result
}

// parseArgs converts comma-separated argument text into the Go values a
// method expects. The first two signature slots are the implicit
// receiver and selector and take no user input.
func parseArgs(argStr string, sig encoding.Signature) ([]any, error) {
	want := sig.NumArgs() - 2
	var fields []string
	if argStr != "" {
		fields = strings.Split(argStr, ",")
	}
	if len(fields) != want {
		return nil, fmt.Errorf("selector takes %d argument(s), got %d", want, len(fields))
	}
	args := make([]any, want)
	for i, f := range fields {
		enc, _ := sig.Arg(i + 2)
		args[i] = convertArg(strings.TrimSpace(f), enc)
	}
	return args, nil
}

func convertArg(value string, enc encoding.Encoding) any {
	switch enc {
	case encoding.Char, encoding.Short, encoding.Int:
		v, _ := strconv.ParseInt(value, 10, 32)
		return int32(v)
	case encoding.LongLong, encoding.Long:
		v, _ := strconv.ParseInt(value, 10, 64)
		return v
	case encoding.UChar, encoding.UShort, encoding.UInt:
		v, _ := strconv.ParseUint(value, 10, 32)
		return uint32(v)
	case encoding.ULongLong, encoding.ULong:
		v, _ := strconv.ParseUint(value, 10, 64)
		return v
	case encoding.Float:
		v, _ := strconv.ParseFloat(value, 32)
		return float32(v)
	case encoding.Double:
		v, _ := strconv.ParseFloat(value, 64)
		return v
	case encoding.Bool:
		return value == "true" || value == "1"
	default:
		return value
	}
}

func encTypeStr(enc encoding.Encoding) string {
	switch enc {
	case encoding.Char:
		return "int8"
	case encoding.Short:
		return "int16"
	case encoding.Int:
		return "int32"
	case encoding.Long, encoding.LongLong:
		return "int64"
	case encoding.UChar:
		return "uint8"
	case encoding.UShort:
		return "uint16"
	case encoding.UInt:
		return "uint32"
	case encoding.ULong, encoding.ULongLong:
		return "uint64"
	case encoding.Float:
		return "float32"
	case encoding.Double:
		return "float64"
	case encoding.Bool:
		return "bool"
	case encoding.Void:
		return "void"
	case encoding.CString:
		return "string"
	case encoding.Object:
		return "object"
	case encoding.Class:
		return "class"
	case encoding.Sel:
		return "selector"
	case encoding.Block:
		return "block"
	default:
		return enc.String()
	}
}

// Demo objects the explorer can message. The map keeps them reachable
// for the lifetime of the process.
var demoObjects = map[string]unsafe.Pointer{}

func demoInstance(className string) (unsafe.Pointer, bool) {
	p, ok := demoObjects[className]
	return p, ok
}

type calculator struct {
	isa unsafe.Pointer
}

type tally struct {
	isa unsafe.Pointer
	n   int64
}

var demoRefs []any

func registerDemos() {
	calc := engine.NewClass("Calculator")
	q := encoding.LongLong
	d := encoding.Double
	mustMethod(calc, "add:to:", encoding.MethodSig(q, q, q), func(_ unsafe.Pointer, _ engine.Sel, args []any) any {
		return args[0].(int64) + args[1].(int64)
	})
	mustMethod(calc, "multiply:by:", encoding.MethodSig(q, q, q), func(_ unsafe.Pointer, _ engine.Sel, args []any) any {
		return args[0].(int64) * args[1].(int64)
	})
	mustMethod(calc, "divide:by:", encoding.MethodSig(d, d, d), func(_ unsafe.Pointer, _ engine.Sel, args []any) any {
		return args[0].(float64) / args[1].(float64)
	})
	mustMethod(calc, "answer", encoding.MethodSig(q), func(_ unsafe.Pointer, _ engine.Sel, _ []any) any {
		return int64(42)
	})
	mustRegister(calc)

	counter := engine.NewClass("Counter")
	mustMethod(counter, "increment", encoding.MethodSig(encoding.Void), func(self unsafe.Pointer, _ engine.Sel, _ []any) any {
		(*tally)(self).n++
		return nil
	})
	mustMethod(counter, "incrementBy:", encoding.MethodSig(encoding.Void, q), func(self unsafe.Pointer, _ engine.Sel, args []any) any {
		(*tally)(self).n += args[0].(int64)
		return nil
	})
	mustMethod(counter, "value", encoding.MethodSig(q), func(self unsafe.Pointer, _ engine.Sel, _ []any) any {
		return (*tally)(self).n
	})
	mustMethod(counter, "reset", encoding.MethodSig(encoding.Void), func(self unsafe.Pointer, _ engine.Sel, _ []any) any {
		(*tally)(self).n = 0
		return nil
	})
	mustRegister(counter)

	c := &calculator{isa: unsafe.Pointer(calc)}
	t := &tally{isa: unsafe.Pointer(counter)}
	demoRefs = append(demoRefs, c, t)
	demoObjects["Calculator"] = unsafe.Pointer(c)
	demoObjects["Counter"] = unsafe.Pointer(t)

	// A promoted block is an object too: its copy, retain and release
	// selectors are dispatched through the same machinery.
	sum := block.New2(func(a, b int64) int64 { return a + b }).Promote()
	demoRefs = append(demoRefs, sum)
	demoObjects[block.HeapClass().Name()] = sum.Pointer()
}

func mustMethod(c *engine.Class, name string, sig encoding.Signature, imp engine.IMP) {
	if err := c.AddMethod(engine.RegisterSelector(name), sig, imp); err != nil {
		panic(err)
	}
}

func mustRegister(c *engine.Class) {
	if err := engine.RegisterClass(c); err != nil {
		panic(err)
	}
}

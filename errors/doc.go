// Package errors provides structured error types for the block-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: class and selector names,
// expected vs. actual type encodings, and the offending argument index.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseVerify, errors.KindArgumentType).
//		Class("Adder").
//		Selector("addTo:").
//		ArgIndex(2).
//		Expected("i").
//		Actual("d").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ReturnMismatch("Adder", "addTo:", "i", "v")
//	err := errors.ArgumentCount("Adder", "addTo:", 3, 4)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

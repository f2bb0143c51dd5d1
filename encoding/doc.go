// Package encoding provides opaque type-encoding tokens and call signatures.
//
// An Encoding identifies a type to the runtime with a short code in the
// Objective-C style: "i" for int32, "q" for int64, "@" for an object
// reference, "@?" for a block, and so on. Tokens are comparable values;
// the grammar behind the codes is deliberately not exposed.
//
// Derive tokens from Go types:
//
//	encoding.TypeOf[int32]()  // "i"
//	encoding.TypeOf[string]() // "*"
//
// A Signature pairs a result token with argument tokens and is the unit the
// engine's signature verification compares:
//
//	sig := encoding.MethodSig(encoding.Int, encoding.Int) // "i@:i"
package encoding

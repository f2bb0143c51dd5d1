// Package engine is the embedded runtime the block bridge targets.
//
// It provides the four services a native-closure ABI needs from its host
// runtime:
//
//   - Selector interning: RegisterSelector deduplicates selectors by name
//     and hands out stable Sel handles.
//   - Classes and dispatch: a Class pairs a name with a method table; Send
//     reads an object's isa word (its first pointer) and invokes the method
//     registered for the selector.
//   - Heap object management: the ObjectTable owns copied objects, their
//     reference counts, and their finalizers. AllocCopy performs the raw
//     byte copy behind the `copy` message; Retain/Release drive lifetime.
//   - Signature verification: VerifySignature compares caller-side type
//     encodings against a method's declared signature and reports the first
//     mismatch with class, selector, encodings, and argument index.
//
// Objects are untyped pointers whose first word is the isa class pointer,
// so anything laid out with that prefix can receive messages:
//
//	ret, err := engine.Send(obj, engine.RegisterSelector("copy"))
//
// All tables are internally synchronized. Logging uses a no-op zap logger
// unless SetLogger installs one.
package engine

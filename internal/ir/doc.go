// Package ir provides the value and schema types shared by the interop
// client, the schema compiler, the code generator, and the call journal.
//
// This package contains type definitions and pure functions only. All other
// internal packages import ir; ir imports nothing internal.
//
// Two families of types live here:
//   - Wire values (IRValue and friends) carried across the interop channel.
//     A host object reference travels as IRRef, encoded {"$ref": "<path>"}.
//   - API schema (ClassSpec and friends) compiled from host introspection
//     data and consumed by the code generator.
//
// All JSON tags use snake_case.
package ir

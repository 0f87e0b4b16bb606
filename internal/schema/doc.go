// Package schema loads host introspection data written in CUE and compiles
// it into ir.ClassSpec values for the code generator.
//
// A schema directory holds one CUE package. Every field under the top-level
// `class` struct is a class:
//
//	class: Speaker: {
//		base: "ID"
//		properties: [
//			{name: "volume", type: "float", detail: "float in [0, 1], default 1.0"},
//		]
//	}
//
// Each class is unified with the #Class definition embedded in this package,
// so misspelled fields are rejected with a source position. Validate then
// checks the classes as a set: references, duplicates, and types.
package schema

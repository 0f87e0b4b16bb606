// Package codegen renders Go proxies from compiled host classes.
//
// Types go to the types package and operators (MESH_OT_rip_edge and the
// like) to the ops package. Each class becomes one file holding a struct
// that embeds its base proxy, a constructor, a getter and setter per
// property, and a method per host function. Enum properties get named
// string types in enums.go.
//
// Every accessor path is built as <receiver accessor>.<host member name>,
// so a generated getter for Node.location reads "<node>.location".
package codegen

package ir

// Version constants for the wire protocol and generator.
const (
	// ProtocolVersion is the interop wire protocol version. The bridge
	// reports its own in the hello response and both must match.
	ProtocolVersion = "1"

	// GeneratorVersion is the blender-go generator version.
	GeneratorVersion = "0.1.0"
)

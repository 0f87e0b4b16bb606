// Package interop is the out-of-process channel between Go and a running
// Blender instance.
//
// A Client owns one Transport. Requests are stamped with an ID and a
// monotonically increasing sequence number, written in FIFO order by a
// single writer goroutine, and matched to responses by ID, so any number of
// goroutines may call the host at once.
//
// Generated proxies (see bpy/types) never talk to the Client directly. They
// hold a Caller and a dotted accessor path, and use the typed accessors in
// this package (GetFloat, SetEnum, CallClass, ...) against
// accessor + "." + member. The host does all the real work.
//
// Wire format: one JSON request per message
//
//	{"id": "...", "seq": 1, "op": "get", "path": "bpy.context.scene.frame_current"}
//
// answered by one JSON response
//
//	{"id": "...", "ok": true, "value": 1}
//
// Host objects travel as references, {"$ref": "bpy.data.objects[\"Cube\"]"}.
// Over byte streams each message is one line prefixed with the frame marker
// (see FrameMarker). Other lines are host output and are logged at debug
// level.
package interop

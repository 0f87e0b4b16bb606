// Package harness runs scripted scenarios against the in-memory host.
//
// A scenario seeds the fake host with objects, drives a real interop client
// through a list of steps, and asserts on the resulting call journal and on
// the host's final state. Every call is journaled into an in-memory SQLite
// store, and the journal read back in seq order is the scenario transcript.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scene_frames
//	description: "What this scenario validates"
//	objects:
//	  - path: bpy.context.scene
//	    class: Scene
//	    props: { name: Scene, frame_current: 1 }
//	    readonly: [name]
//	  - path: bpy.data.speakers
//	    class: BlendDataSpeakers
//	    items:
//	      - key: Speaker
//	        class: Speaker
//	        props: { volume: 1.0 }
//	    methods:
//	      new: { returns: { $ref: 'bpy.data.speakers["Speaker"]' } }
//	steps:
//	  - get: bpy.context.scene.frame_current
//	    expect: 1
//	  - set: bpy.context.scene.frame_current
//	    value: 42
//	  - call: bpy.data.speakers.new
//	    args: { name: Speaker }
//	  - len: bpy.data.speakers
//	    expect: 1
//	  - keys: bpy.data.speakers
//	    expect: [Speaker]
//	  - set: bpy.context.scene.name
//	    value: Other
//	    expect_error: AttributeError
//	assertions:
//	  - type: call_count
//	    op: set
//	    count: 2
//	  - type: call_order
//	    paths: [bpy.context.scene.frame_current, bpy.data.speakers.new]
//	  - type: final_value
//	    path: bpy.context.scene.frame_current
//	    expect: 42
//
// Values are written as plain YAML. Integers and floats stay distinct, so a
// float property is expected as 1.0 rather than 1. A host reference is
// written as a single-key map {$ref: path}.
//
// # Assertion Types
//
//   - call_count: the journal holds exactly count calls matching op and path
//   - call_order: the paths were called in this order, not necessarily adjacent
//   - final_value: a property on the host holds the expected value after the run
//   - no_errors: no call failed except steps that declared expect_error
//
// # Deterministic Testing
//
// The session ID defaults to "scenario-<name>", request IDs come from
// testutil.SequentialIDs and seqs start at 1, so the same scenario always
// produces the same journal. AssertGolden compares its canonical JSON with
// testdata/golden/<name>.golden.
package harness

package ir

// ClassKind distinguishes data classes from operators.
type ClassKind string

const (
	KindType     ClassKind = "type"
	KindOperator ClassKind = "operator"
)

// PropType is the host-side type of a property, parameter or return value.
type PropType string

const (
	TypeBoolean    PropType = "boolean"
	TypeInt        PropType = "int"
	TypeFloat      PropType = "float"
	TypeString     PropType = "string"
	TypeEnum       PropType = "enum"
	TypeEnumSet    PropType = "enum_set"
	TypeClass      PropType = "class"
	TypeCollection PropType = "collection"
	TypeVoid       PropType = "void"
)

// ValidPropTypes defines allowed property types.
var ValidPropTypes = map[PropType]bool{
	TypeBoolean:    true,
	TypeInt:        true,
	TypeFloat:      true,
	TypeString:     true,
	TypeEnum:       true,
	TypeEnumSet:    true,
	TypeClass:      true,
	TypeCollection: true,
	TypeVoid:       true,
}

// IsScalar reports whether t may carry an array length.
func (t PropType) IsScalar() bool {
	switch t {
	case TypeBoolean, TypeInt, TypeFloat:
		return true
	default:
		return false
	}
}

// ClassSpec represents one compiled host class.
type ClassSpec struct {
	Name         string         `json:"name"`
	Kind         ClassKind      `json:"kind"`
	Description  string         `json:"description,omitempty"`
	Base         string         `json:"base,omitempty"`
	CollectionOf string         `json:"collection_of,omitempty"` // element class of a specialized collection
	Properties   []PropertySpec `json:"properties"`
	Functions    []FunctionSpec `json:"functions"`
}

// IsOperator reports whether the class describes a bpy.ops operator.
func (c ClassSpec) IsOperator() bool {
	return c.Kind == KindOperator
}

// PropertySpec represents one property of a class.
type PropertySpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Detail      string   `json:"detail,omitempty"` // e.g. "float array of 2 items in [-inf, inf], default (0.0, 0.0)"
	Type        PropType `json:"type"`
	Readonly    bool     `json:"readonly,omitempty"`
	ArrayLength int      `json:"array_length,omitempty"`
	Items       []string `json:"items,omitempty"`   // enum identifiers
	Class       string   `json:"class,omitempty"`   // class or collection element
	Wrapper     string   `json:"wrapper,omitempty"` // specialized collection class
}

// FunctionSpec represents a callable method of a class.
type FunctionSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Params      []ParamSpec `json:"params"`
	Returns     PropType    `json:"returns,omitempty"` // empty means void
	ReturnClass string      `json:"return_class,omitempty"`
}

// ParamSpec represents one named, optional function parameter.
type ParamSpec struct {
	Name        string   `json:"name"`
	Type        PropType `json:"type"`
	Class       string   `json:"class,omitempty"`
	Items       []string `json:"items,omitempty"`
	ArrayLength int      `json:"array_length,omitempty"`
}

// CallOutcome is the result of a journaled call.
type CallOutcome string

const (
	OutcomeOK    CallOutcome = "ok"
	OutcomeError CallOutcome = "error"
)

// Session is one connection to a host.
type Session struct {
	ID              string `json:"id"`
	Transport       string `json:"transport"`
	HostVersion     string `json:"host_version"`
	ProtocolVersion string `json:"protocol_version"`
	Seq             int64  `json:"seq"` // store sequence at which the session started
}

// CallRecord is one completed request/response pair.
type CallRecord struct {
	ID           string      `json:"id"` // CallID
	SessionID    string      `json:"session_id"`
	Seq          int64       `json:"seq"`
	Op           string      `json:"op"`
	Path         string      `json:"path"`
	Args         IRValue     `json:"args"`  // set value or call options
	Value        IRValue     `json:"value"` // response value
	Outcome      CallOutcome `json:"outcome"`
	ErrorType    string      `json:"error_type,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

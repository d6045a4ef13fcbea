package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// DebugSource is the origin of a GL debug message.
type DebugSource uint32

const (
	DebugSourceAPI            DebugSource = gl.DEBUG_SOURCE_API
	DebugSourceWindowSystem   DebugSource = gl.DEBUG_SOURCE_WINDOW_SYSTEM
	DebugSourceShaderCompiler DebugSource = gl.DEBUG_SOURCE_SHADER_COMPILER
	DebugSourceThirdParty     DebugSource = gl.DEBUG_SOURCE_THIRD_PARTY
	DebugSourceApplication    DebugSource = gl.DEBUG_SOURCE_APPLICATION
	DebugSourceOther          DebugSource = gl.DEBUG_SOURCE_OTHER
)

func (s DebugSource) String() string {
	switch s {
	case DebugSourceAPI:
		return "API"
	case DebugSourceWindowSystem:
		return "Window System"
	case DebugSourceShaderCompiler:
		return "Shader Compiler"
	case DebugSourceThirdParty:
		return "Third Party"
	case DebugSourceApplication:
		return "Application"
	case DebugSourceOther:
		return "Other"
	}
	return ""
}

// DebugType is the kind of a GL debug message.
type DebugType uint32

const (
	DebugTypeError              DebugType = gl.DEBUG_TYPE_ERROR
	DebugTypeDeprecatedBehavior DebugType = gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR
	DebugTypeUndefinedBehavior  DebugType = gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR
	DebugTypePortability        DebugType = gl.DEBUG_TYPE_PORTABILITY
	DebugTypePerformance        DebugType = gl.DEBUG_TYPE_PERFORMANCE
	DebugTypeMarker             DebugType = gl.DEBUG_TYPE_MARKER
	DebugTypePushGroup          DebugType = gl.DEBUG_TYPE_PUSH_GROUP
	DebugTypePopGroup           DebugType = gl.DEBUG_TYPE_POP_GROUP
	DebugTypeOther              DebugType = gl.DEBUG_TYPE_OTHER
)

func (t DebugType) String() string {
	switch t {
	case DebugTypeError:
		return "Error"
	case DebugTypeDeprecatedBehavior:
		return "Deprecated Behaviour"
	case DebugTypeUndefinedBehavior:
		return "Undefined Behaviour"
	case DebugTypePortability:
		return "Portability"
	case DebugTypePerformance:
		return "Performance"
	case DebugTypeMarker:
		return "Marker"
	case DebugTypePushGroup:
		return "Push Group"
	case DebugTypePopGroup:
		return "Pop Group"
	case DebugTypeOther:
		return "Other"
	}
	return ""
}

// DebugSeverity is the importance of a GL debug message.
type DebugSeverity uint32

const (
	DebugSeverityHigh         DebugSeverity = gl.DEBUG_SEVERITY_HIGH
	DebugSeverityMedium       DebugSeverity = gl.DEBUG_SEVERITY_MEDIUM
	DebugSeverityLow          DebugSeverity = gl.DEBUG_SEVERITY_LOW
	DebugSeverityNotification DebugSeverity = gl.DEBUG_SEVERITY_NOTIFICATION
)

func (s DebugSeverity) String() string {
	switch s {
	case DebugSeverityHigh:
		return "high"
	case DebugSeverityMedium:
		return "medium"
	case DebugSeverityLow:
		return "low"
	case DebugSeverityNotification:
		return "notification"
	}
	return ""
}

// DebugMessage is one message delivered by the GL debug output.
type DebugMessage struct {
	ID       uint32
	Source   DebugSource
	Type     DebugType
	Severity DebugSeverity
	Text     string
}

// ignoredDebugIDs are NVIDIA buffer and shader notifications with no diagnostic value.
var ignoredDebugIDs = map[uint32]bool{
	131169: true,
	131185: true,
	131218: true,
	131204: true,
}

// IsSignificant reports whether the message is worth showing.
func (m DebugMessage) IsSignificant() bool {
	return !ignoredDebugIDs[m.ID]
}

// EnableDebugOutput routes GL debug messages to handle when the current
// context is a debug context. It reports whether output was enabled.
func EnableDebugOutput(handle func(DebugMessage)) bool {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		return false
	}

	gl.Enable(gl.DEBUG_OUTPUT)
	// Deliver messages on the thread and call that caused them.
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		msg := DebugMessage{
			ID:       id,
			Source:   DebugSource(source),
			Type:     DebugType(gltype),
			Severity: DebugSeverity(severity),
			Text:     message,
		}
		if msg.IsSignificant() {
			handle(msg)
		}
	}, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
	return true
}

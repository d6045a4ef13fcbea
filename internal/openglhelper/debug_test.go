package openglhelper

import (
	"errors"
	"strings"
	"testing"
)

func TestDebugLabels(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DebugSourceAPI.String(), "API"},
		{DebugSourceWindowSystem.String(), "Window System"},
		{DebugSourceShaderCompiler.String(), "Shader Compiler"},
		{DebugSourceThirdParty.String(), "Third Party"},
		{DebugSourceApplication.String(), "Application"},
		{DebugSourceOther.String(), "Other"},
		{DebugTypeError.String(), "Error"},
		{DebugTypeDeprecatedBehavior.String(), "Deprecated Behaviour"},
		{DebugTypeUndefinedBehavior.String(), "Undefined Behaviour"},
		{DebugTypePortability.String(), "Portability"},
		{DebugTypePerformance.String(), "Performance"},
		{DebugTypeMarker.String(), "Marker"},
		{DebugTypePushGroup.String(), "Push Group"},
		{DebugTypePopGroup.String(), "Pop Group"},
		{DebugTypeOther.String(), "Other"},
		{DebugSeverityHigh.String(), "high"},
		{DebugSeverityMedium.String(), "medium"},
		{DebugSeverityLow.String(), "low"},
		{DebugSeverityNotification.String(), "notification"},
		{DebugSource(0).String(), ""},
		{DebugType(0).String(), ""},
		{DebugSeverity(0).String(), ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("label = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestDebugMessageIsSignificant(t *testing.T) {
	for _, id := range []uint32{131169, 131185, 131218, 131204} {
		if (DebugMessage{ID: id}).IsSignificant() {
			t.Errorf("id %d should be filtered", id)
		}
	}
	if !(DebugMessage{ID: 1280}).IsSignificant() {
		t.Error("id 1280 should be reported")
	}
}

func TestCompileErrorStages(t *testing.T) {
	err := errors.Join(
		&CompileError{Stage: StageFragment, Log: "0:3: syntax error"},
		&CompileError{Stage: StageProgram, Log: "link failed"},
	)

	var ce *CompileError
	if !errors.As(err, &ce) || ce.Stage != StageFragment {
		t.Fatalf("errors.As = %v, want fragment stage", ce)
	}
	msg := err.Error()
	for _, want := range []string{"FRAGMENT", "0:3: syntax error", "PROGRAM", "link failed"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q missing %q", msg, want)
		}
	}
}

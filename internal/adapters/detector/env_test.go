package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hearth/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		ci          string
		expected    detector.OutputMode
	}{
		{name: "terminal", interactive: true, ci: "", expected: detector.ModeBoard},
		{name: "CI=true forces linear", interactive: true, ci: "true", expected: detector.ModeLinear},
		{name: "CI=1 forces linear", interactive: true, ci: "1", expected: detector.ModeLinear},
		{name: "CI=false is ignored", interactive: true, ci: "false", expected: detector.ModeBoard},
		{name: "pipe", interactive: false, ci: "", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.interactive, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		auto     detector.OutputMode
		flag     string
		expected detector.OutputMode
	}{
		{detector.ModeBoard, "", detector.ModeBoard},
		{detector.ModeBoard, "auto", detector.ModeBoard},
		{detector.ModeBoard, "linear", detector.ModeLinear},
		{detector.ModeBoard, "plain", detector.ModeLinear},
		{detector.ModeBoard, "board", detector.ModeBoard},
		{detector.ModeLinear, "board", detector.ModeLinear},
		{detector.ModeLinear, "interactive", detector.ModeLinear},
		{detector.ModeLinear, "unknown", detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.auto.String()+"/"+tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.auto, tt.flag))
		})
	}
}

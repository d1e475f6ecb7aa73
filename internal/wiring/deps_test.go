package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node under internal/ reads exactly
// the dependencies it declares in DependsOn.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "..")
}

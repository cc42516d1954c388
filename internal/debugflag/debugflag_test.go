package debugflag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/internal/debugflag"
)

func TestAssert_NoopWhenDisabled(t *testing.T) {
	debugflag.Enabled = false
	require.NotPanics(t, func() { debugflag.Assert(false, "should not panic") })
}

func TestAssert_PanicsWhenEnabledAndFalse(t *testing.T) {
	debugflag.Enabled = true
	defer func() { debugflag.Enabled = false }()

	require.Panics(t, func() { debugflag.Assert(false, "boom") })
	require.NotPanics(t, func() { debugflag.Assert(true, "fine") })
}

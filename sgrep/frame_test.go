package sgrep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame_String(t *testing.T) {
	require.Equal(t, "00:00", Frame(0).String())
	require.Equal(t, "01:00", Frame(60*FrameRateHz).String())
	require.Equal(t, "02:30", Frame(150*FrameRateHz).String())
}

func TestFormatFrame_Nil(t *testing.T) {
	require.Equal(t, "00:00", FormatFrame(nil))
}

func TestFormatFrame_NonNil(t *testing.T) {
	f := Frame(60 * FrameRateHz)
	require.Equal(t, "01:00", FormatFrame(&f))
}

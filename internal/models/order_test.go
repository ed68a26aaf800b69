package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagSet(t *testing.T) {
	// legacy Excel-waarden en nieuwe notatie moeten allebei werken
	for _, v := range []string{"ja", "Ja", "JA", " ja ", "true", "1"} {
		require.True(t, FlagSet(v), v)
	}
	for _, v := range []string{"", "nee", "Nee", "false", "0", "misschien"} {
		require.False(t, FlagSet(v), v)
	}
}

func TestFlagString(t *testing.T) {
	require.Equal(t, "ja", FlagString(true))
	require.Equal(t, "nee", FlagString(false))
	// roundtrip
	require.True(t, FlagSet(FlagString(true)))
	require.False(t, FlagSet(FlagString(false)))
}

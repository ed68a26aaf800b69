package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmailList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"komma's", "a@mad.crew,b@mad.crew", []string{"a@mad.crew", "b@mad.crew"}},
		{"gemengde scheidingstekens", "a@mad.crew; b@mad.crew\nc@mad.crew", []string{"a@mad.crew", "b@mad.crew", "c@mad.crew"}},
		{"hoofdletters genormaliseerd", "Admin@Mad.Crew", []string{"admin@mad.crew"}},
		{"leeg", "", nil},
		{"alleen scheidingstekens", " ,;\n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseEmailList(tt.in))
		})
	}
}

func TestAdminEmailAllowed(t *testing.T) {
	cfg := &Config{AdminEmails: parseEmailList("admin@mad.crew, tweede@mad.crew")}

	require.True(t, cfg.AdminEmailAllowed("admin@mad.crew"))
	require.True(t, cfg.AdminEmailAllowed("ADMIN@MAD.CREW"))
	require.True(t, cfg.AdminEmailAllowed(" admin@mad.crew "))
	require.False(t, cfg.AdminEmailAllowed("buitenstaander@mad.crew"))
	require.False(t, cfg.AdminEmailAllowed(""))
}

func TestAdminEmailAllowedFailClosed(t *testing.T) {
	// lege allowlist keurt iedereen af
	cfg := &Config{}
	require.False(t, cfg.AdminEmailAllowed("wie@dan.ook"))
}

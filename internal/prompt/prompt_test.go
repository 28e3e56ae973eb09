package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"taskman/internal/prompt"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"anything\n", false},
		{"", false}, // EOF declines
	}

	for _, tc := range cases {
		var out bytes.Buffer
		p := prompt.New(strings.NewReader(tc.input), &out)
		got, err := p.Confirm("Proceed?")
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "input %q", tc.input)
		require.Equal(t, "Proceed? [y/N] ", out.String())
	}
}

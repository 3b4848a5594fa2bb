package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/tyresim/testsupport/cmdtest"
)

func TestAnalyzeCmd(t *testing.T) {
	out, err := cmdtest.Execute(NewAnalyzeCmd(), "text",
		"--laps", "10", "--wear-rate", "0.3", "--temperature", "90")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header plus three laps, stopping below the minimum grip
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "0.700")
	assert.Contains(t, lines[3], "0.100")
}

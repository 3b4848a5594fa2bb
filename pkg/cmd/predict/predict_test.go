package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/tyresim/testsupport/cmdtest"
)

func TestPredictCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "reference",
			args: []string{"--no-jitter", "--temperature", "90", "--wear-rate", "0.02"},
			want: "Predicted tyre life (medium): 40 laps\n",
		},
		{
			name: "hard compound",
			args: []string{"--no-jitter", "--compound", "hard", "--temperature", "90"},
			want: "Predicted tyre life (hard): 60 laps\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := cmdtest.Execute(NewPredictCmd(), "text", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPredictCmdInvalid(t *testing.T) {
	_, err := cmdtest.Execute(NewPredictCmd(), "text", "--wear-rate", "0")
	assert.ErrorContains(t, err, "wear_rate")
	_, err = cmdtest.Execute(NewPredictCmd(), "text", "--compound", "wet")
	assert.Error(t, err)
}

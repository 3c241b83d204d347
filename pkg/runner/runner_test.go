package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerInterface(t *testing.T) {
	var _ Runner = &RealRunner{}
	var _ Runner = &MockRunner{}
}

func TestRealRunner_CommandNotFound(t *testing.T) {
	r := &RealRunner{}
	st, err := r.Run(Command{Path: "nonexistent-interpreter-that-does-not-exist-12345"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent-interpreter-that-does-not-exist-12345")
	assert.Equal(t, -1, st.Code)
}

func TestMockRunner(t *testing.T) {
	want := errors.New("spawn failed")
	var got Command
	m := &MockRunner{RunFunc: func(c Command) (Status, error) {
		got = c
		return Status{Code: 2}, want
	}}

	st, err := m.Run(Command{Path: "python3", Args: []string{"bot.py"}})
	assert.ErrorIs(t, err, want)
	assert.Equal(t, 2, st.Code)
	assert.Equal(t, "python3", got.Path)
	assert.Equal(t, []string{"bot.py"}, got.Args)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		wantSuccess bool
		wantString  string
	}{
		{"success", Status{}, true, "exit status 0"},
		{"failure", Status{Code: 3}, false, "exit status 3"},
		{"signaled", Status{Code: -1, Signal: "killed"}, false, "killed by signal: killed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSuccess, tt.status.Success())
			assert.Equal(t, tt.wantString, tt.status.String())
		})
	}
}

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestConfirm(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		interactive bool
		want        PromptResult
	}{
		{name: "yes", input: "y\n", interactive: true, want: PromptResult{Accepted: true}},
		{name: "YES padded", input: "  YES \n", interactive: true, want: PromptResult{Accepted: true}},
		{name: "empty defaults to no", input: "\n", interactive: true, want: PromptResult{}},
		{name: "other declines", input: "maybe\n", interactive: true, want: PromptResult{}},
		{name: "eof declines", input: "", interactive: true, want: PromptResult{}},
		{name: "non-interactive never asks", input: "y\n", interactive: false, want: PromptResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(&out, strings.NewReader(tt.input), "Overwrite?", tt.interactive)
			assert.Equal(t, tt.want, got)
			if tt.interactive {
				assert.Equal(t, "? Overwrite? [y/N] ", out.String())
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestConfirm_ReadError(t *testing.T) {
	var out bytes.Buffer
	got := Confirm(&out, failingReader{}, "Overwrite?", true)
	assert.True(t, got.Cancelled)
	assert.False(t, got.Accepted)
}

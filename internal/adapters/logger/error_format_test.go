package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.libhal.dev/halpack/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestFormatChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("simple failure"),
			want: "Error: simple failure",
		},
		{
			name: "single zerr error",
			err:  zerr.New("lone failure"),
			want: "Error: lone failure",
		},
		{
			name: "zerr wrapping a plain cause",
			err:  zerr.Wrap(errors.New("root cause"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → root cause",
		},
		{
			name: "three link chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatChain(tt.err))
		})
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ragagent-api/internal/llm"
	"ragagent-api/internal/service/mocks"
)

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"], "serve subcommand registered")
	assert.True(t, names["infer"], "infer subcommand registered")
	assert.NotNil(t, root.RunE, "root defaults to serve")
}

func TestRunInfer(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantPrompt string
		reply      string
		err        error
		wantOut    string
	}{
		{
			name:       "prompt from args",
			args:       []string{"hello", "there"},
			wantPrompt: "hello there",
			reply:      "hi",
			wantOut:    "hi\n",
		},
		{
			name:       "prompt from stdin",
			stdin:      "  spaced prompt  \n",
			wantPrompt: "  spaced prompt  ",
			reply:      "ok",
			wantOut:    "ok\n",
		},
		{
			name:       "empty stdin",
			wantPrompt: "",
			reply:      "",
			wantOut:    "\n",
		},
		{
			name:       "inference failure",
			args:       []string{"x"},
			wantPrompt: "x",
			err:        &llm.InferenceError{Message: llm.InferenceFailedMessage, StatusCode: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockLLMClient(ctrl)
			client.EXPECT().Infer(gomock.Any(), tt.wantPrompt).Return(tt.reply, tt.err)

			var out bytes.Buffer
			err := runInfer(context.Background(), client, tt.args, strings.NewReader(tt.stdin), &out)

			if tt.err != nil {
				var infErr *llm.InferenceError
				require.True(t, errors.As(err, &infErr))
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

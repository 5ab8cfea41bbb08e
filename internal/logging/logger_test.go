package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestLogger_UsesRequestID(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "req-42")

	New(ctx).Infof("workspace.add_node", "node_id=%s", "retailer_1")
	assert.Equal(t, "[info] request_id=req-42 operation=workspace.add_node node_id=retailer_1\n", buf.String())
}

func TestLogger_UnknownWithoutRequestID(t *testing.T) {
	buf := captureLog(t)
	New(context.Background()).Error("autosave.save", errors.New("boom"))
	assert.Equal(t, "[error] request_id=unknown operation=autosave.save error=boom\n", buf.String())
}

func TestRequestID_Missing(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}

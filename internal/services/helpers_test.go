package services

import (
	"context"
	"sync"
	"testing"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (r *recordingNotifier) Notify(_ context.Context, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingNotifier) messages() []notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Message(nil), r.sent...)
}

func assertKind(t *testing.T, err error, kind apperror.Kind, status int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperror.KindOf(err))
	assert.Equal(t, status, apperror.HTTPStatus(err))
}

func u64(v uint64) *uint64 { return &v }

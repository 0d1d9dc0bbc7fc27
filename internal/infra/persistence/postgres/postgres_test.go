package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatch_Check(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatch{logger: newBufferLogger(&buf), last: sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond}}

	w.check(context.Background(), sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond})
	assert.Empty(t, buf.String())

	w.check(context.Background(), sql.DBStats{WaitCount: 5, WaitDuration: 201 * time.Millisecond, InUse: 10})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=100ms")
	assert.Equal(t, int64(5), w.last.WaitCount)
}

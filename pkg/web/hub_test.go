package web

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHub(log.NewNullLogger())
	go h.Run(ctx)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return h, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHub_Publish(t *testing.T) {
	h, url := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 10*time.Millisecond)

	c := cpu.NewCPU(cpu.WithTracer(h.Publish))
	c.Write(0x0000, 0x21) // LD HL, 0xC000
	c.Write(0x0001, 0x00)
	c.Write(0x0002, 0xC0)
	c.Step()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var s cpu.Snapshot
	require.NoError(t, json.Unmarshal(message, &s))
	assert.Equal(t, c.Snapshot(), s)
	assert.Equal(t, "LD HL, d16", s.Instruction)
	assert.Equal(t, uint8(0xC0), s.H)
}

func TestHub_Disconnect(t *testing.T) {
	h, url := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_NoClients(t *testing.T) {
	h, _ := startHub(t)

	// publishing without clients must not block
	for i := 0; i < 1000; i++ {
		h.Publish(cpu.Snapshot{Step: uint64(i)})
	}
	assert.Equal(t, 0, h.Clients())
}

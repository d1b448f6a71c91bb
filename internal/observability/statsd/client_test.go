package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenUDP(t *testing.T) (*net.UDPConn, string) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, conn.LocalAddr().String()
}

func readLine(t *testing.T, conn *net.UDPConn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func TestClient_Count(t *testing.T) {
	server, addr := listenUDP(t)
	client, err := NewClient(Config{Enabled: true, Address: addr, Prefix: "wpmgw"})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	client.Count("gateway.dispatch.attempt", 1, map[string]string{"path": "/get_balance.php"})

	line := readLine(t, server)
	assert.Equal(t, "wpmgw.gateway.dispatch.attempt:1|c|#path:/get_balance.php", line)
}

func TestClient_Timing(t *testing.T) {
	server, addr := listenUDP(t)
	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	client.Timing("gateway.dispatch.duration", 250*time.Millisecond, nil)

	assert.Equal(t, "gateway.dispatch.duration:250|ms", readLine(t, server))
}

func TestClient_GlobalTagsMergedAndSorted(t *testing.T) {
	server, addr := listenUDP(t)
	client, err := NewClient(Config{
		Enabled:    true,
		Address:    addr,
		GlobalTags: map[string]string{"env": "test"},
	})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	client.Count("login.lockout.blocked", 1, map[string]string{"identity": "operator"})

	assert.Equal(t, "login.lockout.blocked:1|c|#env:test,identity:operator", readLine(t, server))
}

func TestClient_DisabledIsNoop(t *testing.T) {
	client, err := NewClient(Config{Enabled: false})
	require.NoError(t, err)

	// Must not panic or block without a connection.
	client.Count("x", 1, nil)
	client.Gauge("x", 1, nil)
	client.Timing("x", time.Second, nil)
	assert.NoError(t, client.Close())
}

func TestClient_NilReceiverIsSafe(t *testing.T) {
	var client *Client
	client.Count("x", 1, nil)
	client.Timing("x", time.Second, nil)
	assert.NoError(t, client.Close())
}

package verusrpc

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strconv"
	"testing"

	"github.com/veruslabs/verusrpc/client"
	"github.com/veruslabs/verusrpc/testutil"
)

// splitHostPort extracts host and numeric port from a test server URL.
func splitHostPort(raw string) (string, int, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", 0, err
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

func TestDial(t *testing.T) {
	node := testutil.NewMockNode("user", "pass")
	defer node.Close()
	node.HandleResult("getblockcount", `12345`)

	cfg := NodeConfig{Username: "user", Password: "pass"}
	host, port, err := splitHostPort(node.URL())
	if err != nil {
		t.Fatalf("splitHostPort: %v", err)
	}
	cfg.Host = host
	cfg.Port = port

	c := Dial(cfg, WithMaxAttempts(1))
	defer c.Close()

	height, err := c.GetBlockCount(context.Background())
	if err != nil {
		t.Fatalf("GetBlockCount: %v", err)
	}
	if height != 12345 {
		t.Errorf("height = %d", height)
	}
}

func TestErrorKindsMatchClient(t *testing.T) {
	cases := []struct {
		facade ErrorKind
		client client.ErrorKind
	}{
		{InvalidCall, client.InvalidCall},
		{TransportFailed, client.TransportFailed},
		{CodecFailed, client.CodecFailed},
		{Remote, client.Remote},
		{ResultDecodeFailed, client.ResultDecodeFailed},
	}
	for _, tc := range cases {
		if tc.facade != tc.client {
			t.Errorf("kind mismatch: %v != %v", tc.facade, tc.client)
		}
	}

	err := &Error{Kind: Remote}
	if !errors.Is(err, &client.Error{Kind: client.Remote}) {
		t.Error("facade error does not match client error")
	}
}

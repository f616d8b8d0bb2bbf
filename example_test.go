package verusrpc_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	verusrpc "github.com/veruslabs/verusrpc"
	"github.com/veruslabs/verusrpc/client"
)

// Dial a local node and read the chain height.
func ExampleDial() {
	c := verusrpc.Dial(verusrpc.NodeConfig{
		Host:     "127.0.0.1",
		Port:     27486,
		Username: "user",
		Password: "pass",
	})
	defer c.Close()

	height, err := c.GetBlockCount(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(height)
}

// Tune retry behavior and attach logging middleware.
func ExampleDial_options() {
	c := verusrpc.Dial(
		verusrpc.NodeConfig{Host: "127.0.0.1", Port: 27486, Username: "user", Password: "pass"},
		verusrpc.WithTimeout(10*time.Second),
		verusrpc.WithMaxAttempts(5),
		verusrpc.WithBackoff(100*time.Millisecond, 2*time.Second),
	)
	defer c.Close()
}

// Distinguish the node's rejection from transport trouble.
func ExampleError() {
	c := verusrpc.Dial(verusrpc.NodeConfig{Host: "127.0.0.1", Port: 27486})
	defer c.Close()

	_, err := c.GetBlock(context.Background(), "unknown-hash")

	var cerr *verusrpc.Error
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case verusrpc.Remote:
			fmt.Println("node said:", cerr.Code, cerr.Message)
		case verusrpc.TransportFailed:
			fmt.Println("node unreachable after", cerr.Attempts, "attempts")
		}
	}
}

// Decode a free-form result into a caller-defined shape.
func ExampleDial_callInto() {
	c := verusrpc.Dial(verusrpc.NodeConfig{Host: "127.0.0.1", Port: 27486})
	defer c.Close()

	type offer struct {
		Price float64 `json:"price"`
	}
	offers, err := client.CallInto[[]offer](context.Background(), c, "getoffers", "VRSC")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(offers))
}

// Run a bridge in front of the node.
func ExampleServeBridge() {
	c := verusrpc.Dial(verusrpc.NodeConfig{
		Host: "127.0.0.1", Port: 27486, Username: "user", Password: "pass",
	})
	defer c.Close()

	handler := verusrpc.NewBridgeHandler(c,
		verusrpc.Recover(),
		verusrpc.RateLimitByClient(50, 100),
	)

	ctx := context.Background()
	if err := verusrpc.ServeBridge(ctx, "127.0.0.1:8000", handler); err != nil {
		log.Fatal(err)
	}
}

package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type stdioResponse struct {
	ID     json.RawMessage `json:"id"`
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
}

// Tool calls are answered by a worker pool, so responses are keyed by id.
func readResponses(t *testing.T, out *bytes.Buffer) map[string]stdioResponse {
	t.Helper()
	responses := make(map[string]stdioResponse)
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var resp stdioResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response line %q: %v", scanner.Text(), err)
		}
		responses[string(resp.ID)] = resp
	}
	return responses
}

func TestServeStdio(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"c","version":"1"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"echo","arguments":{"text":"hello"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"text":"again"}}}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := ServeStdio(context.Background(), newEchoServer(), in, &out); err != nil {
		t.Fatalf("serve: %v", err)
	}

	responses := readResponses(t, &out)
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d: %s", len(responses), out.String())
	}
	for id, want := range map[string]string{"2": "hello", "3": "again"} {
		resp, ok := responses[id]
		if !ok {
			t.Fatalf("missing response for id %s", id)
		}
		if len(resp.Result.Content) != 1 || resp.Result.Content[0].Text != want {
			t.Errorf("id %s: unexpected result %+v", id, resp.Result)
		}
	}
}

func TestServeStdioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocking := &blockingReader{done: make(chan struct{})}
	defer close(blocking.done)

	err := ServeStdio(ctx, newEchoServer(), blocking, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type blockingReader struct {
	done chan struct{}
}

func (b *blockingReader) Read(_ []byte) (int, error) {
	<-b.done
	return 0, context.Canceled
}

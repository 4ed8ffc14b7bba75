package ipc

import (
	"bytes"
	"context"
	"errors"
	"encoding/binary"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	env, err := NewEnvelope(TypeHello, HelloMessage{Player: "red"})
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if err := WriteEnvelope(&buf, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	got, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if got.Type != TypeHello {
		t.Errorf("Type = %q, want %q", got.Type, TypeHello)
	}
	var hello HelloMessage
	if err := json.Unmarshal(got.Data, &hello); err != nil || hello.Player != "red" {
		t.Errorf("payload = %s (%v), want player red", got.Data, err)
	}
}

func TestReadEnvelopeRejectsBadLength(t *testing.T) {
	for _, length := range []uint32{0, MaxMessageSize + 1} {
		var buf bytes.Buffer
		_ = binary.Write(&buf, binary.LittleEndian, length)
		_, err := ReadEnvelope(&buf)
		if err == nil || !strings.Contains(err.Error(), "invalid message length") {
			t.Errorf("length %d: err = %v, want invalid message length", length, err)
		}
	}
}

func TestReadEnvelopeTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(10))
	buf.WriteString("{}")
	if _, err := ReadEnvelope(&buf); err == nil {
		t.Error("expected error for truncated payload")
	}
}

func TestConnectionDispatchesToHandler(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	c := NewConnection(server, nil)
	c.RegisterHandler(TypeHello, func(env Envelope) (*Envelope, error) {
		ack, err := NewEnvelope(TypeAck, AckMessage{Status: "ok"})
		return &ack, err
	})
	go c.ReadLoop(context.Background())

	_ = client.SetDeadline(time.Now().Add(2 * time.Second))

	// unknown types are skipped without a reply
	unknown, _ := NewEnvelope("bogus", struct{}{})
	if err := WriteEnvelope(client, unknown); err != nil {
		t.Fatalf("write: %v", err)
	}
	hello, _ := NewEnvelope(TypeHello, HelloMessage{Player: "red"})
	if err := WriteEnvelope(client, hello); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := ReadEnvelope(client)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != TypeAck {
		t.Errorf("response type = %q, want %q", resp.Type, TypeAck)
	}
}

func TestConnectionReportsHandlerError(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	c := NewConnection(server, nil)
	c.RegisterHandler(TypeWorldState, func(Envelope) (*Envelope, error) {
		return nil, errors.New("unmarshal WorldState: unexpected end of JSON input")
	})
	go c.ReadLoop(context.Background())

	_ = client.SetDeadline(time.Now().Add(2 * time.Second))

	ws, _ := NewEnvelope(TypeWorldState, struct{}{})
	if err := WriteEnvelope(client, ws); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := ReadEnvelope(client)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != TypeError {
		t.Fatalf("response type = %q, want %q", resp.Type, TypeError)
	}
	var msg ErrorMessage
	if err := json.Unmarshal(resp.Data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != TypeWorldState || !strings.Contains(msg.Error, "unexpected end") {
		t.Errorf("error message = %+v", msg)
	}
}

func TestConnectionSend(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	c := NewConnection(server, nil)
	go func() { _ = c.Send(TypeGoals, GoalsMessage{Day: 4}) }()

	_ = client.SetDeadline(time.Now().Add(2 * time.Second))
	resp, err := ReadEnvelope(client)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg GoalsMessage
	if err := json.Unmarshal(resp.Data, &msg); err != nil || resp.Type != TypeGoals || msg.Day != 4 {
		t.Errorf("got %q %s (%v), want goals for day 4", resp.Type, resp.Data, err)
	}
}

func TestReadLoopStopsOnCancel(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c := NewConnection(server, nil)
	go func() {
		c.ReadLoop(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ReadLoop did not return after cancel")
	}
}

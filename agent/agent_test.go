package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentNew(t *testing.T) {
	a := New("Alice", "Tester")

	assert.Equal(t, "Alice", a.Name())
	assert.Equal(t, "Tester", a.Role())
	assert.NotEmpty(t, a.ID())
	assert.Equal(t, StatusIdle, a.Status())
	assert.Empty(t, a.Tools())
	assert.Zero(t, a.QueueDepth())
	assert.Empty(t, a.Memory())
}

func TestAgentTools(t *testing.T) {
	a := New("Alice", "Tester", WithTools(addTool()))

	t.Run("registered tools are listed sorted", func(t *testing.T) {
		a.RegisterTool(&Tool{
			Name:   "aardvark",
			Params: map[string]ParamType{},
			Fn:     func(Args) (any, error) { return nil, nil },
		})
		assert.Equal(t, []string{"aardvark", "add"}, a.Tools())
	})

	t.Run("UseTool invokes the bound callable", func(t *testing.T) {
		result, err := a.UseTool("add", Args{"x": 2, "y": 3})
		require.NoError(t, err)
		assert.Equal(t, 5.0, result)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := a.UseTool("subtract", Args{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTool)

		var toolErr *UnknownToolError
		require.True(t, errors.As(err, &toolErr))
		assert.Equal(t, "Alice", toolErr.Agent)
		assert.Equal(t, "subtract", toolErr.Tool)
	})
}

func TestAgentSend(t *testing.T) {
	t.Run("unbound agent cannot send", func(t *testing.T) {
		a := New("Loner", "Tester")
		_, err := a.Send("Anyone", TypeRequest, "hi", nil)
		assert.ErrorIs(t, err, ErrNoManager)
		assert.Empty(t, a.Memory(), "failed sends are not remembered")
	})

	t.Run("send routes and remembers", func(t *testing.T) {
		mgr := NewManager()
		alice := New("Alice", "Tester")
		bob := New("Bob", "Tester")
		require.NoError(t, mgr.Register(alice))
		require.NoError(t, mgr.Register(bob))

		msg, err := alice.Send("Bob", TypeTask, "work", map[string]any{"n": 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), msg.Sequence)
		assert.Equal(t, 1, bob.QueueDepth())
		require.Len(t, alice.Memory(), 1)
		assert.True(t, alice.Memory()[0].Equal(msg))
	})

	t.Run("send to unknown receiver is not remembered", func(t *testing.T) {
		mgr := NewManager()
		alice := New("Alice", "Tester")
		require.NoError(t, mgr.Register(alice))

		_, err := alice.Send("Ghost", TypeTask, "work", nil)
		assert.ErrorIs(t, err, ErrUnknownReceiver)
		assert.Empty(t, alice.Memory())
	})
}

func TestAgentDispatchNext(t *testing.T) {
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		a := New("Alice", "Tester")
		dispatched, err := a.DispatchNext(ctx)
		assert.False(t, dispatched)
		assert.NoError(t, err)
	})

	t.Run("nil handler consumes silently", func(t *testing.T) {
		mgr := NewManager()
		sink := New("Sink", "Tester")
		driver := New("Driver", "Tester")
		require.NoError(t, mgr.Register(sink))
		require.NoError(t, mgr.Register(driver))

		_, err := driver.Send("Sink", TypeTask, "work", nil)
		require.NoError(t, err)

		dispatched, err := sink.DispatchNext(ctx)
		assert.True(t, dispatched)
		assert.NoError(t, err)
		assert.Zero(t, sink.QueueDepth())
		require.Len(t, sink.Memory(), 1, "consumed message lands in memory")
	})

	t.Run("handler reply is routed and remembered", func(t *testing.T) {
		mgr := NewManager()
		echo := New("Echo", "Tester", WithHandler(HandlerFunc(
			func(ctx context.Context, a *Agent, msg *Message) (*Message, error) {
				return a.Reply(msg, TypeResponse, "echo: "+msg.Content, nil)
			})))
		driver := New("Driver", "Tester")
		require.NoError(t, mgr.Register(echo))
		require.NoError(t, mgr.Register(driver))

		sent, err := driver.Send("Echo", TypeQuery, "hello", nil)
		require.NoError(t, err)

		dispatched, err := echo.DispatchNext(ctx)
		assert.True(t, dispatched)
		require.NoError(t, err)

		require.Equal(t, 1, driver.QueueDepth())
		history := mgr.History()
		require.Len(t, history, 2)
		reply := history[1]
		assert.Equal(t, TypeResponse, reply.Type)
		assert.Equal(t, "echo: hello", reply.Content)
		assert.Equal(t, sent.ID, reply.ParentID)
		assert.Len(t, echo.Memory(), 2, "consumed message plus routed reply")
	})

	t.Run("handler failure surfaces as HandlerError", func(t *testing.T) {
		mgr := NewManager()
		flaky := New("Flaky", "Tester", WithHandler(HandlerFunc(
			func(ctx context.Context, a *Agent, msg *Message) (*Message, error) {
				return nil, errors.New("cannot handle this")
			})))
		driver := New("Driver", "Tester")
		require.NoError(t, mgr.Register(flaky))
		require.NoError(t, mgr.Register(driver))

		_, err := driver.Send("Flaky", TypeTask, "work", nil)
		require.NoError(t, err)

		dispatched, err := flaky.DispatchNext(ctx)
		assert.True(t, dispatched, "the message was consumed")

		var he *HandlerError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, "Flaky", he.Agent)
		assert.Equal(t, "Driver", he.Msg.Sender)
	})

	t.Run("handler panic is recovered", func(t *testing.T) {
		mgr := NewManager()
		panicky := New("Panicky", "Tester", WithHandler(HandlerFunc(
			func(ctx context.Context, a *Agent, msg *Message) (*Message, error) {
				panic("boom")
			})))
		driver := New("Driver", "Tester")
		require.NoError(t, mgr.Register(panicky))
		require.NoError(t, mgr.Register(driver))

		_, err := driver.Send("Panicky", TypeTask, "work", nil)
		require.NoError(t, err)

		dispatched, err := panicky.DispatchNext(ctx)
		assert.True(t, dispatched)

		var he *HandlerError
		require.True(t, errors.As(err, &he))
		assert.Contains(t, he.Err.Error(), "panic")
		assert.Equal(t, StatusIdle, panicky.Status(), "status resets after a panic")
	})
}

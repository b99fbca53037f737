package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playgrid/gomoku-backend/internal/apperror"
)

func TestSeatRegistry_OnConnect(t *testing.T) {
	t.Run("seats are assigned in arrival order", func(t *testing.T) {
		// Given: an empty registry for two players
		registry := NewSeatRegistry(2)

		// When: two connections arrive
		first, err := registry.OnConnect(newFakeConn("c1"))
		require.NoError(t, err)
		second, err := registry.OnConnect(newFakeConn("c2"))
		require.NoError(t, err)

		// Then: indices and names follow arrival order
		require.Equal(t, 1, first.Index)
		require.Equal(t, "Player1", first.Name)
		require.Equal(t, 2, second.Index)
		require.Equal(t, "Player2", second.Name)
		require.Equal(t, 2, registry.Count())
	})

	t.Run("at capacity the connection stays unseated", func(t *testing.T) {
		// Given: a full registry
		registry := NewSeatRegistry(1)
		_, err := registry.OnConnect(newFakeConn("c1"))
		require.NoError(t, err)

		// When: one more connection arrives
		seat, err := registry.OnConnect(newFakeConn("c2"))

		// Then: no seat is handed out, but nothing else breaks
		require.ErrorIs(t, err, apperror.ErrSeatsFull)
		require.Nil(t, seat)
		require.Equal(t, 1, registry.Count())
	})

	t.Run("indices are never recycled", func(t *testing.T) {
		// Given: a registry where seat 1 came and went
		registry := NewSeatRegistry(2)
		first := newFakeConn("c1")
		_, err := registry.OnConnect(first)
		require.NoError(t, err)
		registry.OnDisconnect(first)

		// When: a new connection takes the freed capacity
		seat, err := registry.OnConnect(newFakeConn("c2"))
		require.NoError(t, err)

		// Then: it gets a fresh index, not the departed seat's
		require.Equal(t, 2, seat.Index)
		require.Equal(t, "Player2", seat.Name)
	})
}

func TestSeatRegistry_OnDisconnect(t *testing.T) {
	t.Run("removes the mapping", func(t *testing.T) {
		// Given: one seated connection
		registry := NewSeatRegistry(2)
		conn := newFakeConn("c1")
		_, err := registry.OnConnect(conn)
		require.NoError(t, err)

		// When: it disconnects
		registry.OnDisconnect(conn)

		// Then: the seat is gone from both the map and the join order
		_, ok := registry.SeatFor(conn)
		require.False(t, ok)
		require.Empty(t, registry.Seats())
		require.Equal(t, 0, registry.Count())
	})

	t.Run("panics for a connection that was never seated", func(t *testing.T) {
		// Given: an empty registry
		registry := NewSeatRegistry(2)

		// Then: an unknown disconnect is a programming error
		require.Panics(t, func() {
			registry.OnDisconnect(newFakeConn("ghost"))
		})
	})
}

func TestSeatRegistry_Seats(t *testing.T) {
	// Given: three seated players
	registry := NewSeatRegistry(3)
	conns := []*fakeConn{newFakeConn("c1"), newFakeConn("c2"), newFakeConn("c3")}
	for _, conn := range conns {
		_, err := registry.OnConnect(conn)
		require.NoError(t, err)
	}

	// When: the middle one leaves
	registry.OnDisconnect(conns[1])

	// Then: join order is preserved for the rest
	seats := registry.Seats()
	require.Len(t, seats, 2)
	require.Equal(t, 1, seats[0].Index)
	require.Equal(t, 3, seats[1].Index)
}

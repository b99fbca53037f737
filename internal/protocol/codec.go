// Package protocol implements the length-framed wire format spoken
// between server and clients. Both message kinds ride a raw byte stream:
// decoders consume complete frames from the front of a receive buffer
// and leave incomplete ones in place for the next read.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playgrid/gomoku-backend/internal/apperror"
)

const (
	moveTag  = 'a'
	stateTag = 'm'

	moveFrameSize   = 3
	stateHeaderSize = 4

	statePayloadFields = 5
)

// Move is the client-to-server frame: a fixed 3-byte message carrying
// the target cell in signed board coordinates.
type Move struct {
	X int8
	Y int8
}

func EncodeMove(move Move) []byte {
	return []byte{moveTag, byte(move.X), byte(move.Y)}
}

// DecodeMove consumes one move frame from the front of buf. It returns
// the decoded move and the number of bytes consumed; n == 0 means not
// enough bytes are buffered yet. A tag other than 'a' is a protocol
// violation that must close the connection, but the frame is still
// consumed in full so the stream never desynchronizes.
func DecodeMove(buf []byte) (Move, int, error) {
	if len(buf) < moveFrameSize {
		return Move{}, 0, nil
	}

	if buf[0] != moveTag {
		return Move{}, moveFrameSize, fmt.Errorf("%w: 0x%02x", apperror.ErrUnknownTag, buf[0])
	}

	return Move{X: int8(buf[1]), Y: int8(buf[2])}, moveFrameSize, nil
}

// State is the per-seat broadcast: the latest accepted move plus the
// recipient's own display name and status line. Name and Status are
// recipient-specific; the move triple is the same for every seat.
type State struct {
	Owner  int
	X      int
	Y      int
	Name   string
	Status string
}

// EncodeState frames one broadcast: tag 'm', a 24-bit big-endian payload
// length, then the comma-separated text payload.
func EncodeState(state State) []byte {
	payload := fmt.Sprintf("%d,%d,%d,%s,%s", state.Owner, state.X, state.Y, state.Name, state.Status)

	frame := make([]byte, 0, stateHeaderSize+len(payload))
	frame = append(frame,
		stateTag,
		byte(len(payload)>>16),
		byte(len(payload)>>8),
		byte(len(payload)),
	)

	return append(frame, payload...)
}

// DecodeState consumes one state frame from the front of buf. n == 0
// means the frame is incomplete; a header without its full payload must
// stay buffered across ticks.
func DecodeState(buf []byte) (State, int, error) {
	if len(buf) < stateHeaderSize {
		return State{}, 0, nil
	}

	if buf[0] != stateTag {
		return State{}, 0, fmt.Errorf("%w: 0x%02x", apperror.ErrUnknownTag, buf[0])
	}

	size := int(buf[1])<<16 | int(buf[2])<<8 | int(buf[3])
	if len(buf) < stateHeaderSize+size {
		return State{}, 0, nil
	}

	state, err := parseStatePayload(string(buf[stateHeaderSize : stateHeaderSize+size]))
	if err != nil {
		return State{}, 0, err
	}

	return state, stateHeaderSize + size, nil
}

// parseStatePayload splits on the first four commas only: everything
// after the fourth comma is the status message verbatim, commas and all.
func parseStatePayload(payload string) (State, error) {
	parts := strings.SplitN(payload, ",", statePayloadFields)
	if len(parts) < statePayloadFields {
		return State{}, fmt.Errorf("%w: got %d fields", apperror.ErrBadPayload, len(parts))
	}

	owner, err := strconv.Atoi(parts[0])
	if err != nil {
		return State{}, fmt.Errorf("%w: owner %q", apperror.ErrBadPayload, parts[0])
	}

	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return State{}, fmt.Errorf("%w: x %q", apperror.ErrBadPayload, parts[1])
	}

	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return State{}, fmt.Errorf("%w: y %q", apperror.ErrBadPayload, parts[2])
	}

	return State{
		Owner:  owner,
		X:      x,
		Y:      y,
		Name:   parts[3],
		Status: parts[4],
	}, nil
}

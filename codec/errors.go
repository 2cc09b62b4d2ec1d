package codec

import "errors"

// Error kinds. NeedMore is a normal, non-terminal result: callers keep
// feeding blocks. Every other error is terminal for the handle that
// produced it. The one internal retry is the encoder's: NewEncoder adds a
// dense row and solves again, up to params.ExtraRows times, before it
// returns ErrExtraInsufficient.
var (
	// ErrInvalidInput covers null/empty input, bad lengths, an id outside
	// the valid range, and a call on the wrong kind of handle (Encode on a
	// decoder, Decode on an encoder). A repeated id gets ErrDuplicateID.
	ErrInvalidInput = errors.New("codec: invalid input")

	// ErrSmallN is returned when N < 2.
	ErrSmallN = errors.New("codec: N too small (N < 2)")

	// ErrLargeN is returned when N > 64000.
	ErrLargeN = errors.New("codec: N too large (N > 64000)")

	// ErrBadPeelSeed means the chosen (dense_seed, peel_seed) pair could not
	// be factored into an invertible matrix. With validated parameter
	// tables this should never happen for any N in range.
	ErrBadPeelSeed = errors.New("codec: bad peel seed, matrix not invertible")

	// ErrExtraInsufficient means the encoder's solve added its 32 extra
	// dense rows without finding every pivot. The decoder does not return
	// it: it keeps returning ErrNeedMore however many extra rows arrive.
	ErrExtraInsufficient = errors.New("codec: extra row budget exhausted")

	// ErrOOM signals an allocation failure.
	ErrOOM = errors.New("codec: out of memory")

	// ErrNotReady is returned when gf256.Init has not yet succeeded.
	ErrNotReady = errors.New("codec: gf256 kernel not initialized")

	// ErrNeedMore is the decoder's "not done yet" signal. Not a failure:
	// the caller should supply another block and call Decode again.
	ErrNeedMore = errors.New("codec: need more blocks")

	// ErrNotSolved is returned by Recover/RecoverBlock/BecomeEncoder
	// when called on a decoder that has not reached Success.
	ErrNotSolved = errors.New("codec: decoder has not finished solving")

	// ErrDuplicateID is returned by Decode when an id has already been
	// accepted by this decoder.
	ErrDuplicateID = errors.New("codec: id already decoded")
)

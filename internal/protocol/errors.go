package protocol

import "errors"

var (
	ErrBufferUnderflow    = errors.New("buffer underflow")
	ErrMalformedVarint    = errors.New("malformed varint")
	ErrVarintOverflow     = errors.New("varint is too long")
	ErrInvalidLength      = errors.New("invalid length prefix")
	ErrValueOutOfRange    = errors.New("value out of range")
	ErrUnknownItemType    = errors.New("unknown item type")
	ErrCorruptItemPayload = errors.New("corrupt item payload")
	ErrEncodingFailure    = errors.New("item payload encoding failed")
)

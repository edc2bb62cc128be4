package chunk

import "errors"

// Errors returned by chunk constructors and slicing. Rope code never sees
// them for well-formed input: the rope builder splits text at character
// starts and replaces invalid UTF-8 beforehand.
var (
	ErrInvalidUTF8      = errors.New("chunk: text is not valid UTF-8")
	ErrChunkTooLarge    = errors.New("chunk: text exceeds MaxBase bytes")
	ErrIndexOutOfBounds = errors.New("chunk: offset out of range")
	ErrNotCharBoundary  = errors.New("chunk: offset inside a UTF-8 character")
)

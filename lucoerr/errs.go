// Package lucoerr defines the error model shared by all luco packages.
//
// Every fallible operation in the module reports a *Error carrying a
// Kind and a message. Callers branch on the kind with errors.Is against
// the per-kind sentinels:
//
//	if errors.Is(err, lucoerr.ErrKeyNotFound) { ... }
package lucoerr

import "fmt"

type Kind int

const (
	None Kind = iota
	KeyNotFound
	FilesystemError
	ParsingError
	ParsingErrorWrongType
	WrongType
	WrongIndex
)

func (k Kind) String() string {
	return map[Kind]string{
		None:                  "none",
		KeyNotFound:           "key not found",
		FilesystemError:       "filesystem error",
		ParsingError:          "parsing error",
		ParsingErrorWrongType: "parsing error wrong type",
		WrongType:             "wrong type",
		WrongIndex:            "wrong index",
	}[k]
}

// Error is a kind plus a rendered message.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Is matches any *Error with the same kind, so the per-kind sentinels
// below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// Sentinels, one per kind.
var (
	ErrKeyNotFound      = &Error{kind: KeyNotFound, msg: KeyNotFound.String()}
	ErrFilesystem       = &Error{kind: FilesystemError, msg: FilesystemError.String()}
	ErrParsing          = &Error{kind: ParsingError, msg: ParsingError.String()}
	ErrParsingWrongType = &Error{kind: ParsingErrorWrongType, msg: ParsingErrorWrongType.String()}
	ErrWrongType        = &Error{kind: WrongType, msg: WrongType.String()}
	ErrWrongIndex       = &Error{kind: WrongIndex, msg: WrongIndex.String()}
)

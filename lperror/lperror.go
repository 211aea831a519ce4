package lperror

import "fmt"

type ErrorCode uint32

// 0001-0099 listpack structure, 0100-0199 file storage
const (
	UnhandledError ErrorCode = iota
	InvalidPosition
	ListpackTooLarge
	MalformedListpack
	ElementTooLarge
)

const (
	FileSystemIssue ErrorCode = iota + 100
	FailedToReadFile
	ChecksumMismatch
	UnsupportedFormatVersion
	NotAListpackFile
	TruncatedFile
)

type Error interface {
	error
	GetCode() ErrorCode
	GetErr() error
}

func New(errorCode ErrorCode, args ...any) Error {
	errorFormat := getErrorFormat(errorCode)
	return &codedError{errorCode, fmt.Errorf(errorFormat, args...)}
}

type codedError struct {
	ErrorCode
	Err error
}

func (e *codedError) Error() string {
	return fmt.Sprintf("ERROR[%04d] %s", e.GetCode(), e.Err.Error())
}

func (e *codedError) GetCode() ErrorCode {
	return e.ErrorCode
}

func (e *codedError) GetErr() error {
	return e.Err
}

func (e *codedError) Unwrap() error {
	return e.Err
}

func getErrorFormat(errorCode ErrorCode) string {
	switch errorCode {
	case InvalidPosition:
		return "position %d does not reference an element"
	case ListpackTooLarge:
		return "listpack would grow to %d bytes, past the 32 bit total-bytes limit"
	case MalformedListpack:
		return "malformed listpack: %s"
	case ElementTooLarge:
		return "element of %d bytes cannot be encoded"
	case FileSystemIssue:
		return "unexpected file system issue: %w"
	case FailedToReadFile:
		return "unable to read file %s: %w"
	case ChecksumMismatch:
		return "the checksum of %s does not match its payload"
	case UnsupportedFormatVersion:
		return `file format version "%s" is outside the supported range %s`
	case NotAListpackFile:
		return "%s is not a listpack file"
	case TruncatedFile:
		return "%s is truncated"
	}

	return "unknown error"
}

package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoGeometry        = errors.New("no geometry")
	ErrFaceSize          = errors.New("cubemap faces must be square and equally sized")
)

// IOError reports a file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CompileError carries the driver's info log for a shader stage that failed
// to compile.
type CompileError struct {
	Stage string
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %s: compile failed: %s", e.Stage, e.Path, e.Log)
}

// LinkError carries the info log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "program link failed: " + e.Log
}

// AssetLoadError reports a mesh or image that could not be imported.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

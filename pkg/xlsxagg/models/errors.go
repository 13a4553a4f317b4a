package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryAccess indicates the source directory could not be listed.
	ErrDirectoryAccess = errors.New("directory access failed")
	// ErrFileNameParse indicates a file name did not carry an order key.
	ErrFileNameParse = errors.New("file name has no order key")
	// ErrCellRead indicates a source workbook could not be opened or read.
	ErrCellRead = errors.New("cell read failed")
	// ErrWorkbookWrite indicates the destination workbook could not be opened or saved.
	ErrWorkbookWrite = errors.New("workbook write failed")
	// ErrTemplateCopy indicates the destination could not be created from the template.
	ErrTemplateCopy = errors.New("template copy failed")
	// ErrInvalidConfig indicates the run configuration is unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DirectoryAccessError is returned when the source directory cannot be listed.
// It aborts the run.
type DirectoryAccessError struct {
	Dir string
	Err error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("read directory %q: %v", e.Dir, e.Err)
}

func (e *DirectoryAccessError) Unwrap() []error {
	return []error{ErrDirectoryAccess, e.Err}
}

// FileNameParseError describes a file skipped by the catalog.
type FileNameParseError struct {
	Name string
	Err  error
}

func (e *FileNameParseError) Error() string {
	return fmt.Sprintf("parse file name %q: %v", e.Name, e.Err)
}

func (e *FileNameParseError) Unwrap() []error {
	return []error{ErrFileNameParse, e.Err}
}

// CellReadError describes a source workbook whose values were replaced by nils.
type CellReadError struct {
	Path string
	Cell CellAddress // empty when the workbook itself failed to open
	Err  error
}

func (e *CellReadError) Error() string {
	if e.Cell.IsNone() {
		return fmt.Sprintf("read workbook %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read cell %s in %q: %v", e.Cell, e.Path, e.Err)
}

func (e *CellReadError) Unwrap() []error {
	return []error{ErrCellRead, e.Err}
}

// WorkbookWriteError is returned when the destination cannot be opened, filled or saved.
type WorkbookWriteError struct {
	Path  string
	Stage string // "open", "write", "save"
	Err   error
}

func (e *WorkbookWriteError) Error() string {
	return fmt.Sprintf("%s workbook %q: %v", e.Stage, e.Path, e.Err)
}

func (e *WorkbookWriteError) Unwrap() []error {
	return []error{ErrWorkbookWrite, e.Err}
}

// CopyError is returned when the template cannot be copied to the destination.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %q to %q: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() []error {
	return []error{ErrTemplateCopy, e.Err}
}

// ConfigError describes an invalid configuration field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// Package venv picks the Python interpreter used to start the bot.
package venv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Source tells where a resolved interpreter came from.
type Source int

const (
	SourceHiddenVenv Source = iota // <base>/.venv
	SourceVenv                     // <base>/venv
	SourceSystem                   // bare name resolved via PATH at spawn time
)

func (s Source) String() string {
	switch s {
	case SourceHiddenVenv:
		return ".venv"
	case SourceVenv:
		return "venv"
	case SourceSystem:
		return "system"
	}
	return "unknown"
}

// ErrNotFound is returned by a Resolver that has no interpreter to offer.
var ErrNotFound = errors.New("interpreter not found")

// Resolution is the interpreter selected for a launch.
type Resolution struct {
	Path   string
	Source Source
}

// Resolver yields a Resolution, or ErrNotFound.
type Resolver interface {
	Resolve() (Resolution, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func() (Resolution, error)

// Resolve calls f.
func (f ResolverFunc) Resolve() (Resolution, error) { return f() }

// Chain returns a Resolver that tries each resolver in order and stops at the
// first one that does not report ErrNotFound. Later resolvers are never called
// once an earlier one succeeds.
func Chain(resolvers ...Resolver) Resolver {
	return ResolverFunc(func() (Resolution, error) {
		for _, r := range resolvers {
			res, err := r.Resolve()
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return res, err
		}
		return Resolution{}, ErrNotFound
	})
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Candidate is a virtual environment directory probed for an interpreter.
type Candidate struct {
	Name   string // directory name relative to the base
	Path   string // absolute interpreter path
	Source Source
}

// Finder resolves the interpreter for a launcher living in Base.
type Finder struct {
	Base   string     // absolute launcher directory
	System string     // generic interpreter name; defaults to SystemInterpreter
	FS     FileSystem // injected for testing
}

// Candidates lists the virtual environment interpreters in priority order.
func (f *Finder) Candidates() []Candidate {
	return []Candidate{
		{Name: ".venv", Path: filepath.Join(f.Base, ".venv", InterpreterSubpath), Source: SourceHiddenVenv},
		{Name: "venv", Path: filepath.Join(f.Base, "venv", InterpreterSubpath), Source: SourceVenv},
	}
}

// Resolve returns the first existing candidate, falling back to the generic
// system interpreter name. The fallback is never checked here: a missing
// system interpreter surfaces when the process is spawned.
func (f *Finder) Resolve() (Resolution, error) {
	candidates := f.Candidates()
	resolvers := make([]Resolver, 0, len(candidates)+1)
	for _, c := range candidates {
		resolvers = append(resolvers, f.probe(c))
	}
	resolvers = append(resolvers, ResolverFunc(f.system))
	return Chain(resolvers...).Resolve()
}

func (f *Finder) probe(c Candidate) Resolver {
	return ResolverFunc(func() (Resolution, error) {
		info, err := f.FS.Stat(c.Path)
		if err != nil || info.IsDir() {
			return Resolution{}, ErrNotFound
		}
		return Resolution{Path: c.Path, Source: c.Source}, nil
	})
}

func (f *Finder) system() (Resolution, error) {
	name := f.System
	if name == "" {
		name = SystemInterpreter
	}
	return Resolution{Path: name, Source: SourceSystem}, nil
}

package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/temirov/dirtree/internal/types"
)

const (
	// errorWriteLineFormat is used when a rendered line cannot be written.
	errorWriteLineFormat = "writing line for %s: %w"

	currentDirectorySegment = "."
	parentDirectorySegment  = ".."
)

// Walker renders a directory tree depth-first, printing each entry before its children.
type Walker struct {
	writer io.Writer
	lister *EntryLister
}

// NewWalker returns a walker writing to writer and listing directories with lister.
func NewWalker(writer io.Writer, lister *EntryLister) *Walker {
	return &Walker{writer: writer, lister: lister}
}

// Render writes the root line and then every descendant of rootPath.
// The first listing or write failure stops the traversal; lines already
// written are left in place.
func (walker *Walker) Render(rootPath string) error {
	if _, writeError := fmt.Fprintln(walker.writer, RootDisplayName(rootPath)+types.DirectorySuffix); writeError != nil {
		return fmt.Errorf(errorWriteLineFormat, rootPath, writeError)
	}
	isLastStack := make([]bool, 0, 8)
	return walker.walk(rootPath, 1, &isLastStack)
}

// walk renders the children of directoryPath. The stack length equals depth-1
// on entry and is restored before returning.
func (walker *Walker) walk(directoryPath string, depth int, isLastStack *[]bool) error {
	entries, listError := walker.lister.List(directoryPath)
	if listError != nil {
		return listError
	}

	for index, entry := range entries {
		*isLastStack = append(*isLastStack, index == len(entries)-1)

		line := BuildConnector(depth, *isLastStack) + entry.DisplayName()
		if _, writeError := fmt.Fprintln(walker.writer, line); writeError != nil {
			return fmt.Errorf(errorWriteLineFormat, entry.Path, writeError)
		}

		if entry.IsDirectory {
			if walkError := walker.walk(entry.Path, depth+1, isLastStack); walkError != nil {
				return walkError
			}
		}

		*isLastStack = (*isLastStack)[:len(*isLastStack)-1]
	}
	return nil
}

// RootDisplayName returns the final segment of rootPath, or rootPath itself
// when it has no final segment (".", "..", "/", "dir/..").
func RootDisplayName(rootPath string) string {
	trimmedPath := rootPath
	for {
		withoutSeparators := strings.TrimRight(trimmedPath, string(filepath.Separator)+"/")
		if withoutSeparators == "" {
			return rootPath
		}
		withoutCurrent := strings.TrimSuffix(withoutSeparators, string(filepath.Separator)+currentDirectorySegment)
		withoutCurrent = strings.TrimSuffix(withoutCurrent, "/"+currentDirectorySegment)
		if withoutCurrent == withoutSeparators {
			trimmedPath = withoutSeparators
			break
		}
		trimmedPath = withoutCurrent
	}

	if volumeName := filepath.VolumeName(trimmedPath); volumeName == trimmedPath {
		return rootPath
	}
	finalSegment := filepath.Base(trimmedPath)
	if finalSegment == currentDirectorySegment || finalSegment == parentDirectorySegment {
		return rootPath
	}
	return finalSegment
}

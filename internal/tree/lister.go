// Package tree walks a directory and renders it as a connector-based text tree.
package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/dirtree/internal/types"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// DirectoryReader returns the raw children of a directory.
type DirectoryReader func(directoryPath string) ([]os.DirEntry, error)

// PathStatter returns file information following symbolic links.
type PathStatter func(path string) (fs.FileInfo, error)

// EntryLister lists the visible children of a directory in name order.
type EntryLister struct {
	Exclusions    types.ExclusionSet
	ReadDirectory DirectoryReader
	Stat          PathStatter
}

// NewEntryLister returns a lister backed by the host filesystem.
func NewEntryLister(exclusions types.ExclusionSet) *EntryLister {
	return &EntryLister{
		Exclusions:    exclusions,
		ReadDirectory: os.ReadDir,
		Stat:          os.Stat,
	}
}

// List returns the children of directoryPath whose names are not excluded,
// sorted by byte order of their names.
func (lister *EntryLister) List(directoryPath string) ([]types.DirectoryEntry, error) {
	directoryEntries, readDirectoryError := lister.ReadDirectory(directoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	entries := make([]types.DirectoryEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if lister.Exclusions.Contains(entryName) {
			continue
		}
		entryPath := filepath.Join(directoryPath, entryName)
		entries = append(entries, types.DirectoryEntry{
			Path:        entryPath,
			Name:        entryName,
			IsDirectory: lister.isDirectory(entryPath, directoryEntry),
		})
	}

	sort.Slice(entries, func(left, right int) bool {
		return entries[left].Name < entries[right].Name
	})
	return entries, nil
}

// isDirectory resolves symbolic links; a dangling link counts as a file.
func (lister *EntryLister) isDirectory(entryPath string, directoryEntry os.DirEntry) bool {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return directoryEntry.IsDir()
	}
	if lister.Stat == nil {
		return false
	}
	targetInfo, statError := lister.Stat(entryPath)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

const errorClipboardWriteFormat = "copying %d bytes to clipboard: %w"

// Copier copies rendered output to a clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to the Copier interface.
type CopierFunc func(text string) error

// Copy calls the underlying function.
func (copierFunc CopierFunc) Copy(text string) error {
	return copierFunc(text)
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	write func(text string) error
}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{write: clipboard.WriteAll}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf(errorClipboardWriteFormat, len(text), errUnsupported)
	}
	if writeError := service.write(text); writeError != nil {
		return fmt.Errorf(errorClipboardWriteFormat, len(text), writeError)
	}
	return nil
}

var errUnsupported = errors.New("no clipboard utility available")

var (
	_ Copier = (*Service)(nil)
	_ Copier = CopierFunc(nil)
)

package helpers

import (
	"io"
	"sync"
)

type ColorizedLogger struct {
	useColor bool
	verbose  bool
	out      io.Writer
	mu       sync.Mutex
}

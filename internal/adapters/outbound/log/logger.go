package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// NewLogger builds the service logger. The prefix is placed before each
// message, after the timestamp.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	if prefix == "-" {
		prefix = ""
	}
	return log.New(w, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"[mathsolver] "`
	out    io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.out
	if out == nil {
		out = os.Stdout
	}
	depend.Register(NewLogger(out, il.Prefix))
	return ctx, nil
}

package logger

import (
	"io"
	"log"
	"os"
)

// InitLogger returns the app logger. prefix tags the component, e.g. "[wheel] ".
func InitLogger(prefix string) *log.Logger {
	return New(os.Stdout, prefix)
}

func New(out io.Writer, prefix string) *log.Logger {
	return log.New(out, prefix, log.LstdFlags|log.Lshortfile)
}

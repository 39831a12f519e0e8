package bench

import (
	"log"
	"os"
)

type Logger interface {
	Print(args ...interface{})
	Println(args ...interface{})
	Printf(format string, args ...interface{})
}

func defaultLogger() Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}

type discard struct{}

func (discard) Print(_ ...interface{}) {}
func (discard) Println(_ ...interface{}) {}
func (discard) Printf(_ string, _ ...interface{}) {}

// Discard drops every message.
func Discard() Logger {
	return discard{}
}

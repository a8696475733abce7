package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ccollicutt/mostactive/pkg/parser"
)

// onceString is a string flag that may be given only once.
type onceString struct {
	value string
	set   bool
}

var _ pflag.Value = (*onceString)(nil)

func (s *onceString) String() string { return s.value }

func (s *onceString) Set(v string) error {
	if s.set {
		return fmt.Errorf("flag given more than once")
	}
	s.value = v
	s.set = true
	return nil
}

func (s *onceString) Type() string { return "string" }

// flagError tags every flag parsing failure as an invalid argument.
func flagError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v (%s)", parser.ErrInvalidArgument, err, usageLine)
}

package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "group")
	c.Register(&memberCmd{}, "group")
	c.Register(&rateCmd{}, "group")
	c.Register(&groupsCmd{}, "group")

	c.Register(&purchaseCmd{}, "entries")
	c.Register(&transferCmd{}, "entries")
	c.Register(&undoCmd{}, "entries")
	c.Register(&settleCmd{}, "entries")

	c.Register(&showCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&fmtCmd{}, "tools")
	c.Register(&currenciesCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// IsRegistered reports whether name is a subcommand of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

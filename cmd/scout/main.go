package main

import (
	"candidatescout/cmd/scout/commands"
	"candidatescout/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}

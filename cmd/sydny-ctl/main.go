// sydny-ctl drives a running assistant from the command line: confirm or
// cancel a pending action, inject an utterance, or ask it to exit.
//
//	sydny-ctl confirm
//	sydny-ctl cancel
//	sydny-ctl say "open notepad"
//	sydny-ctl exit
package main

import (
	"fmt"
	"os"

	cli "github.com/spf13/pflag"

	"sydny/internal/ipc"
)

func main() {
	socket := cli.StringP("socket", "s", ipc.SocketPath, "Control socket path")
	cli.Parse()

	args := cli.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: sydny-ctl [--socket path] confirm|cancel|say <text>|exit")
		os.Exit(2)
	}

	msg := ipc.ControlMessage{Cmd: args[0]}
	switch args[0] {
	case "confirm", "cancel", "exit":
	case "say":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "say needs an utterance")
			os.Exit(2)
		}
		msg.Arg = args[1]
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		os.Exit(2)
	}

	if err := ipc.Send(*socket, msg); err != nil {
		fmt.Println("sydny is not running:", err)
		os.Exit(1)
	}
}

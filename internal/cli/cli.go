package cli

import (
	"fmt"
	"strings"
)

type Command string

const (
	CommandServe   Command = "serve"
	CommandDoctor  Command = "doctor"
	CommandTools   Command = "tools"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandServe:   {},
	CommandDoctor:  {},
	CommandTools:   {},
	CommandVersion: {},
	CommandHelp:    {},
}

type Parsed struct {
	Command  Command
	ShowHelp bool
}

// Parse interprets CLI arguments. Bare invocation defaults to serve, since
// MCP clients execute the binary with no arguments.
func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandServe}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case "--version":
			parsed.ShowHelp = false
			parsed.Command = CommandVersion
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}

			cmd := Command(arg)
			if _, ok := validCommands[cmd]; !ok {
				return Parsed{}, fmt.Errorf("unknown command: %s", arg)
			}

			parsed.Command = cmd
			parsed.ShowHelp = cmd == CommandHelp
			if i != len(args)-1 {
				return Parsed{}, fmt.Errorf("unexpected arguments after command %q", arg)
			}
		}
	}

	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [command]

Commands:
  serve     Serve MCP over stdio (default when no command is given)
  doctor    Check the Hyprland session and control socket
  tools     List the MCP tools this server exposes
  version   Print version information
  help      Show this help

Flags:
  -h, --help      Show help
  --version       Show version

Environment:
  HYPRMCP_LOG_LEVEL    debug, info, warn, or error (default: info)
  HYPRMCP_TIMEOUT_MS   Socket exchange timeout in milliseconds (default: 5000)
`, binaryName)
}

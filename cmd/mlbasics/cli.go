package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type CommandArgs struct {
	commandName string
	params      map[string]string
}

func NewCommandArgs(args []string) *CommandArgs {
	var cmdName = ""
	var flags = make(map[string]string)
	for i := 1; i < len(args); i++ {
		var arg = args[i]
		if strings.HasPrefix(arg, "-") {
			if i < len(args)-1 {
				var k = strings.TrimPrefix(arg, "-")
				var v = args[i+1]
				flags[k] = v
				i++
			}
		} else if cmdName == "" {
			cmdName = arg
		}
	}
	return &CommandArgs{
		commandName: cmdName,
		params:      flags,
	}
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	return val
}

// GetFloats parses a comma separated list of numbers.
func (ca *CommandArgs) GetFloats(name string, defaultVal []float64) ([]float64, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	return parseFloats(val)
}

func parseFloats(s string) ([]float64, error) {
	var result []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var v, err = strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parseFloats %q", s)
		}
		result = append(result, v)
	}
	return result, nil
}

type Cli struct {
	args  *CommandArgs
	items map[string]func() error
}

func NewCli() *Cli {
	return &Cli{
		args:  NewCommandArgs(os.Args),
		items: make(map[string]func() error),
	}
}

func (c *Cli) Params() *CommandArgs {
	return c.args
}

func (c *Cli) AddCommand(name string, handler func() error) {
	c.items[name] = handler
}

func (c *Cli) Execute() error {
	var commandName = c.args.CommandName()
	if commandName == "" {
		commandName = "demo"
	}
	handler, found := c.items[commandName]
	if !found {
		return errors.Errorf("command not found %v", commandName)
	}
	return handler()
}

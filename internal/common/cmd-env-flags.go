// This module provides integration of command-line flags with environment variables.
// The purpose to launch either `cxxflags --format txt main.cpp` or `CXXFLAGS_FORMAT=txt cxxflags main.cpp`.
// See usages of CmdEnvString and others.

package common

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"
)

type cmdLineArg interface {
	pflag.Value
	isFlagSet() bool
	getCmdName() string
	getEnvName() string
	getDescription() string
}

type cmdLineArgString struct {
	cmdName string
	envName string
	usage   string

	isSet bool
	def   string
	value string
}

func (s *cmdLineArgString) String() string {
	return s.value
}

func (s *cmdLineArgString) Set(v string) error {
	s.isSet = true
	s.value = v
	return nil
}

func (s *cmdLineArgString) Type() string {
	return "string"
}

func (s *cmdLineArgString) getCmdName() string {
	return s.cmdName
}

func (s *cmdLineArgString) getEnvName() string {
	return s.envName
}

func (s *cmdLineArgString) getDescription() string {
	return s.usage
}

func (s *cmdLineArgString) isFlagSet() bool {
	return s.isSet
}

type cmdLineArgBool struct {
	cmdName string
	envName string
	usage   string

	isSet bool
	def   bool
	value bool
}

func (s *cmdLineArgBool) String() string {
	return strconv.FormatBool(s.value)
}

func (s *cmdLineArgBool) Set(v string) error {
	s.isSet = true
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	s.value = b
	return nil
}

func (s *cmdLineArgBool) Type() string {
	return "bool"
}

func (s *cmdLineArgBool) getCmdName() string {
	return s.cmdName
}

func (s *cmdLineArgBool) getEnvName() string {
	return s.envName
}

func (s *cmdLineArgBool) getDescription() string {
	return s.usage
}

func (s *cmdLineArgBool) isFlagSet() bool {
	return s.isSet
}

type cmdLineArgInt struct {
	cmdName string
	envName string
	usage   string

	isSet bool
	def   int64
	value int64
}

func (s *cmdLineArgInt) String() string {
	return strconv.FormatInt(s.value, 10)
}

func (s *cmdLineArgInt) Set(v string) error {
	s.isSet = true
	b, err := strconv.ParseInt(v, 10, 0)
	if err != nil {
		return err
	}
	s.value = b
	return nil
}

func (s *cmdLineArgInt) Type() string {
	return "int"
}

func (s *cmdLineArgInt) getCmdName() string {
	return s.cmdName
}

func (s *cmdLineArgInt) getEnvName() string {
	return s.envName
}

func (s *cmdLineArgInt) getDescription() string {
	return s.usage
}

func (s *cmdLineArgInt) isFlagSet() bool {
	return s.isSet
}

// CmdEnvFlagSet is a set of options, each of them is a command-line flag, an env var, or both.
// A command-line flag has a priority over an env var.
type CmdEnvFlagSet struct {
	fs      *pflag.FlagSet
	allArgs []cmdLineArg
	getenv  func(string) string
}

func MakeCmdEnvFlagSet(name string, getenv func(string) string) *CmdEnvFlagSet {
	return &CmdEnvFlagSet{
		fs:     pflag.NewFlagSet(name, pflag.ContinueOnError),
		getenv: getenv,
	}
}

var cmdEnvFlags = MakeCmdEnvFlagSet(os.Args[0], os.Getenv)

// splitCmdName splits "version|v" into a long name and a one-letter shorthand.
func splitCmdName(cmdName string) (name string, shorthand string) {
	if idx := strings.IndexByte(cmdName, '|'); idx != -1 {
		return cmdName[:idx], cmdName[idx+1:]
	}
	return cmdName, ""
}

func (set *CmdEnvFlagSet) register(s cmdLineArg, cmdName string, usage string) *pflag.Flag {
	set.allArgs = append(set.allArgs, s)
	if cmdName == "" { // only env var makes sense
		return nil
	}
	name, shorthand := splitCmdName(cmdName)
	return set.fs.VarPF(s, name, shorthand, usage)
}

func (set *CmdEnvFlagSet) String(usage string, def string, cmdFlagName string, envName string) *string {
	sf := &cmdLineArgString{cmdFlagName, envName, usage, false, def, def}
	set.register(sf, cmdFlagName, usage)
	return &sf.value
}

func (set *CmdEnvFlagSet) Bool(usage string, def bool, cmdFlagName string, envName string) *bool {
	sf := &cmdLineArgBool{cmdFlagName, envName, usage, false, def, def}
	if f := set.register(sf, cmdFlagName, usage); f != nil {
		f.NoOptDefVal = "true" // `--version` without a value
	}
	return &sf.value
}

func (set *CmdEnvFlagSet) Int(usage string, def int64, cmdFlagName string, envName string) *int64 {
	sf := &cmdLineArgInt{cmdFlagName, envName, usage, false, def, def}
	set.register(sf, cmdFlagName, usage)
	return &sf.value
}

// Args are positional arguments left after parsing.
func (set *CmdEnvFlagSet) Args() []string {
	return set.fs.Args()
}

func (set *CmdEnvFlagSet) PrintUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage of %s:\n\n", set.fs.Name())
	for _, f := range set.allArgs {
		name, shorthand := splitCmdName(f.getCmdName())
		valueHint := ""
		if _, is := f.(*cmdLineArgString); is {
			valueHint = " string"
		}
		if _, is := f.(*cmdLineArgInt); is {
			valueHint = " integer"
		}
		if shorthand != "" {
			valueHint += " / -" + shorthand
		}
		if name != "" {
			_, _ = fmt.Fprintf(w, "  --%s%s\n", name, valueHint)
		}
		if f.getEnvName() != "" {
			_, _ = fmt.Fprintf(w, "  %s=\n", f.getEnvName())
		}
		_, _ = fmt.Fprint(w, "    \t")
		_, _ = fmt.Fprint(w, strings.ReplaceAll(f.getDescription(), "\n", "\n    \t"))
		_, _ = fmt.Fprint(w, "\n\n")
	}
}

// Parse parses args (without a program name) and then fills options not set in args from env.
func (set *CmdEnvFlagSet) Parse(args []string) error {
	set.fs.Usage = func() { set.PrintUsage(os.Stderr) }
	if err := set.fs.Parse(args); err != nil {
		return err
	}
	for _, f := range set.allArgs {
		// override by a corresponding ENV_NAME if a command-line --flag not provided
		if !f.isFlagSet() && f.getEnvName() != "" {
			if envVal := set.getenv(f.getEnvName()); envVal != "" {
				if err := f.Set(envVal); err != nil {
					return xerrors.Errorf("error parsing %s env var: %w", f.getEnvName(), err)
				}
			}
		}
	}
	return nil
}

func CmdEnvString(usage string, def string, cmdFlagName string, envName string) *string {
	return cmdEnvFlags.String(usage, def, cmdFlagName, envName)
}

func CmdEnvBool(usage string, def bool, cmdFlagName string, envName string) *bool {
	return cmdEnvFlags.Bool(usage, def, cmdFlagName, envName)
}

func CmdEnvInt(usage string, def int64, cmdFlagName string, envName string) *int64 {
	return cmdEnvFlags.Int(usage, def, cmdFlagName, envName)
}

func CmdEnvArgs() []string {
	return cmdEnvFlags.Args()
}

func ParseCmdFlagsCombiningWithEnv() {
	err := cmdEnvFlags.Parse(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(err)
		cmdEnvFlags.PrintUsage(os.Stdout)
		os.Exit(2)
	}
}

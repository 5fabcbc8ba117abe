package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/VKCOM/cxxflags/internal/flags"
	"github.com/kballard/go-shellquote"
	"golang.org/x/xerrors"
)

type OutputFormat int

const (
	FormatJSON   OutputFormat = iota // {"flags": [...], "do_cache": true}, like a completion engine receives
	FormatTxt                        // compile_flags.txt: one flag per line
	FormatShell                      // one line, quoted for sh
	FormatCompdb                     // compile_commands.json
)

var formatNames = map[string]OutputFormat{
	"json":   FormatJSON,
	"txt":    FormatTxt,
	"shell":  FormatShell,
	"compdb": FormatCompdb,
}

func ParseFormat(name string) (OutputFormat, error) {
	if format, ok := formatNames[strings.ToLower(name)]; ok {
		return format, nil
	}
	return 0, xerrors.Errorf("unknown output format %q: expected json, txt, shell or compdb", name)
}

func RenderJSON(w io.Writer, res flags.Result) error {
	if res.Flags == nil {
		res.Flags = []string{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

func RenderTxt(w io.Writer, res flags.Result) error {
	for _, arg := range res.Flags {
		if _, err := fmt.Fprintln(w, arg); err != nil {
			return err
		}
	}
	return nil
}

func RenderShell(w io.Writer, res flags.Result) error {
	_, err := fmt.Fprintln(w, shellquote.Join(res.Flags...))
	return err
}

// CompileCommand is an entry of compile_commands.json.
type CompileCommand struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
}

// MakeCompileCommands creates compdb entries: "{compiler} {flags...} {file}" for every file.
// Flags are taken per file from resolve, though now they are equal for all files.
func MakeCompileCommands(directory string, compiler string, files []string, resolve func(fileName string) (flags.Result, error)) ([]CompileCommand, error) {
	commands := make([]CompileCommand, 0, len(files))
	for _, fileName := range files {
		res, err := resolve(fileName)
		if err != nil {
			return nil, xerrors.Errorf("can't get flags for %s: %w", fileName, err)
		}
		args := make([]string, 0, len(res.Flags)+2)
		args = append(args, compiler)
		args = append(args, res.Flags...)
		args = append(args, fileName)

		commands = append(commands, CompileCommand{
			Directory: directory,
			Arguments: args,
			File:      fileName,
		})
	}
	return commands, nil
}

func RenderCompdb(w io.Writer, commands []CompileCommand) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(commands)
}

// CollectIncludeDirs resolves every file and merges their include dirs, each dir listed once.
func CollectIncludeDirs(files []string, resolve func(fileName string) (flags.Result, error)) (flags.IncludeDirs, error) {
	dirs := flags.MakeIncludeDirs()
	for _, fileName := range files {
		res, err := resolve(fileName)
		if err != nil {
			return dirs, xerrors.Errorf("can't get flags for %s: %w", fileName, err)
		}
		dirs.MergeWith(flags.IncludeDirsOf(res.Flags))
	}
	return dirs, nil
}

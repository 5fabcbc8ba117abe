package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/VKCOM/cxxflags"
	"github.com/VKCOM/cxxflags/internal/client"
	"github.com/VKCOM/cxxflags/internal/common"
	"github.com/VKCOM/cxxflags/internal/flags"
	"golang.org/x/xerrors"
)

func failedStart(err interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, "[cxxflags]", err)
	os.Exit(1)
}

func failedUsage(err interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, "[cxxflags]", err)
	os.Exit(2)
}

func warn(message string) {
	_, _ = fmt.Fprintln(os.Stderr, "[cxxflags]", message)
}

// makeLocalResolve resolves flags inside this process, the same as a completion engine does.
func makeLocalResolve(baseDir string, extra string) func(string) (flags.Result, error) {
	extraFlags, err := client.ParseExtraFlags(extra)
	if err != nil {
		failedUsage(err)
	}
	resolver := cxxflags.MakeResolver(baseDir, extraFlags)
	return func(fileName string) (flags.Result, error) {
		return resolver.FlagsForFile(fileName), nil
	}
}

// makeDaemonResolve asks a running cxxflags-daemon.
func makeDaemonResolve(daemonHostPort string) (func(string) (flags.Result, error), func()) {
	grpcClient, err := client.MakeGRPCClient(daemonHostPort)
	if err != nil {
		failedStart(err)
	}
	return func(fileName string) (flags.Result, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return grpcClient.FlagsForFile(ctx, fileName)
	}, grpcClient.Clear
}

// checkOptions rejects incompatible options and reports the ones that take no effect.
func checkOptions(format client.OutputFormat, onlyIncludeDirs bool, daemonHostPort string, extraFlags string, baseDir string) (warnings []string, err error) {
	if onlyIncludeDirs && format == client.FormatCompdb {
		return nil, xerrors.New("invalid usage: --include-dirs can't be combined with --format compdb")
	}
	if daemonHostPort != "" {
		if extraFlags != "" {
			warnings = append(warnings, "extra flags are ignored when querying a daemon, set them in its config")
		}
		if baseDir != cxxflags.DirectoryOfThisConfig() {
			warnings = append(warnings, "base dir is ignored when querying a daemon, set it in its config")
		}
	}
	return warnings, nil
}

func render(w io.Writer, format client.OutputFormat, compiler string, files []string, resolve func(string) (flags.Result, error), onlyIncludeDirs bool) error {
	if format == client.FormatCompdb {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		absFiles := make([]string, 0, len(files))
		for _, fileName := range files {
			absFiles = append(absFiles, common.PathAbs(cwd, fileName))
		}
		commands, err := client.MakeCompileCommands(cwd, compiler, absFiles, resolve)
		if err != nil {
			return err
		}
		return client.RenderCompdb(w, commands)
	}

	var res flags.Result
	if onlyIncludeDirs {
		includeDirs, err := client.CollectIncludeDirs(files, resolve)
		if err != nil {
			return err
		}
		if includeDirs.IsEmpty() {
			warn("no include dirs found")
		}
		res = flags.Result{Flags: includeDirs.AsCxxArgs(), DoCache: true}
	} else {
		if len(files) != 1 {
			return xerrors.Errorf("exactly one file expected for this format, got %d", len(files))
		}
		var err error
		if res, err = resolve(files[0]); err != nil {
			return err
		}
	}

	switch format {
	case client.FormatTxt:
		return client.RenderTxt(w, res)
	case client.FormatShell:
		return client.RenderShell(w, res)
	default:
		return client.RenderJSON(w, res)
	}
}

func main() {
	showVersionAndExit := common.CmdEnvBool("Show version and exit.", false,
		"version|v", "")
	checkDaemonAndExit := common.CmdEnvBool("Print out daemon status and exit.\nThe daemon is taken from CXXFLAGS_DAEMON.", false,
		"check-daemon", "")
	dropDaemonCacheAndExit := common.CmdEnvBool("Drop results cache of the daemon and exit.", false,
		"drop-daemon-cache", "")
	outputFormat := common.CmdEnvString("Output format: json (default), txt (compile_flags.txt), shell, compdb (compile_commands.json).", "json",
		"format|f", "CXXFLAGS_FORMAT")
	outputFile := common.CmdEnvString("Write to a file instead of stdout (atomically).", "",
		"output|o", "")
	compiler := common.CmdEnvString("A compiler to put into compile_commands.json, default c++.", "c++",
		"compiler", "CXXFLAGS_COMPILER")
	onlyIncludeDirs := common.CmdEnvBool("Print only include dirs (-I, -iquote, -isystem, --sysroot), grouped.\nSeveral files are allowed, their dirs are merged. Not compatible with compdb.", false,
		"include-dirs", "")
	daemonHostPort := common.CmdEnvString("A running cxxflags-daemon 'host:port'.\nIf not set, flags are resolved inside this process.", "",
		"daemon", "CXXFLAGS_DAEMON")
	extraFlags := common.CmdEnvString("Extra flags appended after the built-in ones, a shell-like string.\nOutput options (-o, -c, -MD and others) are dropped.", "",
		"extra", "CXXFLAGS_EXTRA")
	baseDir := common.CmdEnvString("A directory to resolve relative paths against.\nBy default, a directory of the cxxflags sources.", cxxflags.DirectoryOfThisConfig(),
		"base-dir", "CXXFLAGS_BASE_DIR")
	logFileName := common.CmdEnvString("A filename to log, nothing by default.\nErrors are duplicated to stderr always.", "",
		"", "CXXFLAGS_LOG_FILENAME")
	logVerbosity := common.CmdEnvInt("Logger verbosity level for INFO (-1 off, default 0, max 2).\nErrors are logged always.", 0,
		"", "CXXFLAGS_LOG_VERBOSITY")

	common.ParseCmdFlagsCombiningWithEnv()

	if *showVersionAndExit {
		fmt.Println(common.GetVersion())
		os.Exit(0)
	}

	if err := client.MakeLoggerClient(*logFileName, *logVerbosity); err != nil {
		failedStart(err)
	}

	if *checkDaemonAndExit || *dropDaemonCacheAndExit {
		if *daemonHostPort == "" {
			failedUsage("no daemon set; you should set CXXFLAGS_DAEMON or --daemon")
		}
		var err error
		if *checkDaemonAndExit {
			err = client.RequestDaemonStatus(os.Stdout, *daemonHostPort)
		} else {
			err = client.RequestDropCache(os.Stdout, *daemonHostPort)
		}
		if err != nil {
			failedStart(err)
		}
		os.Exit(0)
	}

	format, err := client.ParseFormat(*outputFormat)
	if err != nil {
		failedUsage(err)
	}
	files := common.CmdEnvArgs()
	if len(files) == 0 {
		failedUsage("invalid usage: a file name expected; example: 'cxxflags --format txt src/main.cpp'")
	}
	warnings, err := checkOptions(format, *onlyIncludeDirs, *daemonHostPort, *extraFlags, *baseDir)
	if err != nil {
		failedUsage(err)
	}
	for _, message := range warnings {
		warn(message)
	}

	var resolve func(string) (flags.Result, error)
	if *daemonHostPort != "" {
		var closeClient func()
		resolve, closeClient = makeDaemonResolve(*daemonHostPort)
		defer closeClient()
	} else {
		resolve = makeLocalResolve(*baseDir, *extraFlags)
	}

	var out bytes.Buffer
	if err := render(&out, format, *compiler, files, resolve, *onlyIncludeDirs); err != nil {
		failedStart(err)
	}

	if *outputFile != "" {
		err = common.WriteFileAtomically(*outputFile, out.Bytes())
	} else {
		_, err = os.Stdout.Write(out.Bytes())
	}
	if err != nil {
		failedStart(err)
	}
}

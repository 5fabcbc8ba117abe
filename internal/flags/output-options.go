package flags

import (
	"strings"
)

func HasPrefixOrEqualOption(optionName string, flagValue string) bool {
	if flagValue == optionName || strings.HasPrefix(flagValue, optionName+"=") {
		return true
	}

	return false
}

// optionsWithValue make no sense for parsing a file: "-o file", "-ofile" and "-o=file" are all dropped.
var optionsWithValue = []string{"-o", "-MF", "-MT", "-MQ"}

// optionsStandalone make no sense for parsing a file either.
var optionsStandalone = []string{"-c", "-MD", "-MMD", "-MP"}

// DropOutputOptions filters out options controlling compiler output, since flags are used for parsing only.
// It's applied to extra flags from every source: the command line, env and the daemon config.
func DropOutputOptions(args []string) (kept []string, dropped []string) {
	kept = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if isOptionOf(optionsStandalone, arg) {
			dropped = append(dropped, arg)
			continue
		}
		if optionName, glued := outputOptionOf(arg); optionName != "" {
			dropped = append(dropped, arg)
			if !glued && i+1 < len(args) {
				i++ // "-o file"
				dropped = append(dropped, args[i])
			}
			continue
		}
		kept = append(kept, arg)
	}
	return kept, dropped
}

func isOptionOf(options []string, arg string) bool {
	for _, optionName := range options {
		if HasPrefixOrEqualOption(optionName, arg) {
			return true
		}
	}
	return false
}

// outputOptionOf detects "-MF" (value is next) and "-MFfile" / "-MF=file" (value is glued).
func outputOptionOf(arg string) (optionName string, glued bool) {
	for _, optionName = range optionsWithValue {
		if arg == optionName {
			return optionName, false
		}
		if strings.HasPrefix(arg, optionName) {
			return optionName, true
		}
	}
	return "", false
}

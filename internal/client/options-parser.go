package client

import (
	"github.com/VKCOM/cxxflags/internal/flags"
	"github.com/kballard/go-shellquote"
	"golang.org/x/xerrors"
)

// ParseExtraFlags splits a shell-like string (CXXFLAGS_EXTRA="-DFOO -I 'my dir'") into flags.
// Options controlling output (-o file, -ofile, -c, -MD and others) are dropped: flags are used for parsing only.
func ParseExtraFlags(extra string) ([]string, error) {
	args, err := shellquote.Split(extra)
	if err != nil {
		return nil, xerrors.Errorf("can't parse extra flags %q: %w", extra, err)
	}

	extraFlags, dropped := flags.DropOutputOptions(args)
	if len(dropped) != 0 {
		logClient.Info(1, "dropped extra flags", dropped)
	}
	return extraFlags, nil
}

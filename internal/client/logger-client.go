package client

import (
	"io"

	"github.com/VKCOM/cxxflags/internal/common"
)

// anywhere in the cli code, use logClient.Info() and other methods for logging
// stdout is reserved for flags output, so logs go to a file or nowhere, errors are duplicated to stderr
var logClient = common.MakeLoggerToWriter(io.Discard, -1)

func MakeLoggerClient(logFile string, verbosity int64) error {
	logger, err := common.MakeLogger(logFile, verbosity, true, true)
	if err != nil {
		return err
	}
	logClient = logger
	return nil
}

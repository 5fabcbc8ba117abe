package server

import "github.com/VKCOM/cxxflags/internal/common"

// anywhere in the daemon code, use logServer.Info() and other methods for logging
var logServer *common.LoggerWrapper

func MakeLoggerServer(logFile string, verbosity int64) error {
	var err error
	logServer, err = common.MakeLogger(logFile, verbosity, false, false)
	return err
}

// SetLoggerServer is for tests and for embedding the daemon into another process.
func SetLoggerServer(logger *common.LoggerWrapper) {
	logServer = logger
}

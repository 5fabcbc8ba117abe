package server

import (
	"os"
	"testing"

	"github.com/VKCOM/cxxflags/internal/common"
	"github.com/VKCOM/cxxflags/internal/config"
	"github.com/VKCOM/cxxflags/internal/flags"
)

func TestMain(m *testing.M) {
	SetLoggerServer(common.MakeLoggerToWriter(os.Stderr, -1))
	os.Exit(m.Run())
}

func testResolverFactory(cfg *config.Config) *flags.Resolver {
	return flags.MakeResolver(append([]string{"-Wall", "-I", "."}, cfg.ExtraFlags...), cfg.BaseDirOr("/home/user/project"))
}

func makeTestServer(t *testing.T) *FlagsServer {
	t.Helper()
	stats, err := MakeStatsd("")
	if err != nil {
		t.Fatal(err)
	}
	return MakeFlagsServer(config.Default(), testResolverFactory, stats)
}

package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/pipe01/htmlfold/internal/config"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "htmlfold"

var version string = "0.1.0"

var configPath = kingpin.Flag("config", "YAML config file").Short('c').ExistingFile()

func main() {
	kingpin.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		kingpin.Fatalf("failed to load config: %s", err)
	}

	commonlog.Configure(cfg.Log.Verbosity, cfg.LogPath())

	protocol.SetTraceValue(protocol.TraceValueMessage)

	s := newServer(cfg.MaxRanges)

	server := glspserver.NewServer(&s.handler, lsName, false)

	server.RunStdio()
}

package main

import (
	"github.com/meetkit/bbbclient/internal/cli"
	"github.com/meetkit/bbbclient/internal/common/logtrace"
)

func main() {
	logtrace.InitLogger()
	cli.Execute()
}

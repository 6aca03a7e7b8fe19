package main

import (
	"github.com/moodbuster/moodbuster/cmd"
	"github.com/moodbuster/moodbuster/config"
	"github.com/moodbuster/moodbuster/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}

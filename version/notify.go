package version

import (
	"context"
	"fmt"
	"time"

	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/moodbuster/moodbuster/releases/tag/v"+latest),
	)
}

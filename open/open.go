// Package open launches suggestion links in a browser.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/key"
	"github.com/spf13/viper"
)

// URL opens link with the configured browser, or the system handler when none is set.
// Only http and https links are accepted.
func URL(link string) error {
	if err := validate(link); err != nil {
		return err
	}

	cmd, ok := command(link, viper.GetString(key.OpenBrowser))
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func validate(link string) error {
	if link == "" {
		return fmt.Errorf("nothing to open")
	}

	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: not a web link", link)
	}
	return nil
}

func command(input, app string) (*exec.Cmd, bool) {
	if app != "" {
		return commandWith(input, app)
	}

	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}

func commandWith(input, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		// start treats & as a command separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), true
	case constant.Linux:
		return exec.Command(app, input), true
	case constant.Android:
		return exec.Command("termux-open", "--choose", input), true
	default:
		return nil, false
	}
}

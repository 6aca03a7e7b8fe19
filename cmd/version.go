package cmd

import (
	"context"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as json")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Latest   string `json:"latest,omitempty"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Revision string `json:"revision"`
}

func currentBuild() buildInfo {
	return buildInfo{
		App:      constant.Moodbuster,
		Version:  constant.Version,
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Revision: constant.Revision,
	}
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git Commit" }}   {{ bold .Revision }}
  {{ faint "Build Date" }}   {{ bold .BuiltAt }}
  {{ faint "Built By" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := currentBuild()

		if lo.Must(cmd.Flags().GetBool("json")) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if latest, err := version.Latest(ctx); err == nil {
				info.Latest = latest
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		defer version.Notify()
		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}

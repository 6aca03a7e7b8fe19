package cmd

import (
	"os"
	"strings"

	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/config"
	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are unset")
	envCmd.Flags().BoolP("aliases", "a", false, "Also show the unprefixed names catalogs keys are read from")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

func envName(k string) string {
	return strings.ToUpper(constant.Moodbuster + "_" + config.EnvKeyReplacer.Replace(k))
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables moodbuster reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		withAliases := lo.Must(cmd.Flags().GetBool("aliases"))

		keys := slices.Clone(config.EnvExposed)
		slices.Sort(keys)

		names := []string{where.EnvConfigPath}
		for _, k := range keys {
			names = append(names, envName(k))
			if withAliases {
				names = append(names, config.EnvAliases[k]...)
			}
		}

		for _, env := range names {
			value := os.Getenv(env)
			present := value != ""

			if (!present && setOnly) || (present && unsetOnly) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if !present {
				cmd.Println(style.Fg(color.Red)("unset"))
				continue
			}

			if k, ok := lo.FindKeyBy(config.Default, func(k string, f config.Field) bool {
				return f.Secret && (envName(k) == env || lo.Contains(config.EnvAliases[k], env))
			}); ok && k != "" {
				value = config.Mask(value)
			}
			cmd.Println(style.Fg(color.Green)(value))
		}
	},
}

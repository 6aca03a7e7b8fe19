package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/moodbuster/moodbuster/auth"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/config"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.SetOut(os.Stdout)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage catalog credentials kept in the system keyring",
}

func completeSecrets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Filter(auth.Secrets, func(k string, _ int) bool {
		return strings.HasPrefix(k, toComplete)
	}), cobra.ShellCompDirectiveNoFileComp
}

func secretFrom(arg string) (string, error) {
	if auth.IsSecret(arg) {
		return arg, nil
	}
	if _, ok := config.Default[arg]; ok {
		return "", fmt.Errorf("%s is not a credential, use \"config set\" instead", arg)
	}
	return "", errUnknownKey(arg)
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("value", "v", "", "credential value, prompted for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:               "set <key>",
	Short:             "Store a credential in the keyring",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSecrets,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := secretFrom(args[0])
		handleErr(err)

		value := lo.Must(cmd.Flags().GetString("value"))
		if value == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: config.Default[k].Description,
			}, &value, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.Set(k, strings.TrimSpace(value)))
		cmd.Printf("%s %s stored in the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(k))
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

var authDeleteCmd = &cobra.Command{
	Use:               "delete <key>",
	Short:             "Remove a credential from the keyring",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSecrets,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := secretFrom(args[0])
		handleErr(err)

		handleErr(auth.Delete(k))
		cmd.Printf("%s %s removed from the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(k))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where each credential is read from",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range auth.Secrets {
			value, source := auth.Lookup(k)

			cmd.Print(style.Bold(k), " ")
			if source == auth.SourceNone {
				cmd.Println(style.Fg(color.Red)("unset"))
				continue
			}

			cmd.Println(style.Fg(color.Green)(config.Mask(value)), style.Faint("("+string(source)+")"))
		}
	},
}

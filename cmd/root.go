package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	debugFlag   bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "enterastab",
	Short: "Enter-as-Tab focus cycling for terminal forms",
	Long: `enterastab makes Enter behave like Tab inside Bubble Tea forms.

Running it without a subcommand opens the interactive demo, a menu of
example forms showing each configuration option.

Examples:
  enterastab                                   # open the demo menu
  enterastab demo --form 4                     # open the cyclic form
  enterastab demo --form 1 --cyclic            # default form, cyclic
  enterastab demo --form 6 --textarea-strategy "new line"`,
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "enterastab", Title: "Commands:"})
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to "+debugLogFile+" (also ENTERASTAB_DEBUG=1)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable colors")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

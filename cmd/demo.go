package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guzus/enterastab/focus"
	"github.com/guzus/enterastab/tui"
	"github.com/spf13/cobra"
)

const debugLogFile = "enterastab-debug.log"

var (
	formFlag             int
	tabIndexFlag         bool
	manualActionsFlag    bool
	cyclicFlag           bool
	textAreaStrategyFlag string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive demo forms",
	Long: `Start the full-screen demo. Without --form a menu of the example forms
is shown. Configuration flags override the chosen form's settings and open
the default form when --form is not given.`,
	GroupID: "enterastab",
	Args:    cobra.NoArgs,
	RunE:    runDemo,
}

func init() {
	addDemoFlags(rootCmd)
	addDemoFlags(demoCmd)
	rootCmd.AddCommand(demoCmd)
}

func addDemoFlags(c *cobra.Command) {
	c.Flags().IntVarP(&formFlag, "form", "f", 0,
		"open form N (1-6) directly instead of the menu")
	c.Flags().BoolVar(&tabIndexFlag, "tab-index", false,
		"order fields by their tabindex attribute")
	c.Flags().BoolVar(&manualActionsFlag, "manual-actions", false,
		"only treat elements marked data-is-action as actions")
	c.Flags().BoolVar(&cyclicFlag, "cyclic", false,
		"wrap from the last field to the first")
	c.Flags().StringVar(&textAreaStrategyFlag, "textarea-strategy", string(focus.StrategyTab),
		`enter in text areas: "tab", "new line" or "ctrl+enter"`)
}

func runDemo(cmd *cobra.Command, args []string) error {
	tui.SetPlainOutput(noColorFlag)

	m, err := demoModel(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func demoModel(cmd *cobra.Command) (tui.MainModel, error) {
	form := formFlag
	if form == 0 && configFlagsChanged(cmd) {
		form = 1
	}
	if form == 0 {
		return tui.NewMainModel(), nil
	}

	presets := tui.Presets()
	if form < 1 || form > len(presets) {
		return tui.MainModel{}, fmt.Errorf("--form must be between 1 and %d, got %d", len(presets), form)
	}
	cfg, err := demoConfig(cmd, presets[form-1].Config)
	if err != nil {
		return tui.MainModel{}, err
	}
	return tui.NewFormMainModel(form-1, cfg)
}

var configFlags = []string{"tab-index", "manual-actions", "cyclic", "textarea-strategy"}

func configFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range configFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// demoConfig applies the explicitly set flags on top of base.
func demoConfig(cmd *cobra.Command, base focus.Config) (focus.Config, error) {
	cfg := base
	flags := cmd.Flags()
	if flags.Changed("tab-index") {
		cfg.UseTabIndex = tabIndexFlag
	}
	if flags.Changed("manual-actions") {
		cfg.AutoDetectAction = !manualActionsFlag
	}
	if flags.Changed("cyclic") {
		cfg.Cyclic = cyclicFlag
	}
	if flags.Changed("textarea-strategy") {
		s, err := focus.ParseTextAreaStrategy(normalizeStrategy(textAreaStrategyFlag))
		if err != nil {
			return cfg, err
		}
		cfg.TextAreaStrategy = s
	}
	return cfg, nil
}

func normalizeStrategy(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "newline", "new-line", "new_line":
		return string(focus.StrategyNewLine)
	case "ctrl-enter", "ctrl_enter":
		return string(focus.StrategyCtrlEnter)
	}
	return s
}

func debugEnabledFromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ENTERASTAB_DEBUG"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// setupLogging points the standard logger at the debug log file, or
// discards it since the TUI owns the terminal.
func setupLogging() (func(), error) {
	if !debugFlag && !debugEnabledFromEnv() {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(debugLogFile, "enterastab")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	return func() { f.Close() }, nil
}

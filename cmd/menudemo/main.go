// Command menudemo runs the menu engine in an SDL window: a main menu, a
// pause menu, a settings menu and a small gameplay scene.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	logLevel    string
	logPath     string
	menusPath   string
	inputDevice string
)

var rootCmd = &cobra.Command{
	Use:   "menudemo",
	Short: "Menu navigation demo",
	Long: `menudemo opens a window with the main menu.

Navigate with the mouse, the arrow keys and Enter, or a game controller.
Escape pauses the game and Backspace goes back one screen.`,
	SilenceUsage: true,
	RunE:         runDemo,
}

var menusCmd = &cobra.Command{
	Use:   "menus",
	Short: "Print the menu layout and the action of every entry",
	RunE:  printMenus,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and menu layout without opening a window",
	RunE:  checkSettings,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file (default $MENUNAV_CONFIG)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&logPath, "log-path", "", "log file or directory (default stdout)")
	flags.StringVar(&menusPath, "menus", "", "TOML menu layout (default built-in)")
	rootCmd.Flags().StringVar(&inputDevice, "input-device", "", "evdev device for hardware buttons, e.g. /dev/input/event3")

	rootCmd.AddCommand(menusCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

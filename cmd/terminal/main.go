package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/sevigo/review-desk/internal/config"
)

func main() {
	themeFlag := flag.String("theme", "", "UI theme (cyan, matrix, amber, cyberpunk, ice, dracula, fire)")
	listThemes := flag.Bool("list-themes", false, "List all available themes")
	flag.Parse()

	if *listThemes {
		fmt.Println("Available themes:")
		for _, theme := range ListThemes() {
			fmt.Printf("  - %s\n", theme)
		}
		os.Exit(0)
	}

	// Log lines on stderr would tear the full-screen UI.
	if os.Getenv("RD_LOG_OUTPUT") == "" {
		viper.Set("LOG_OUTPUT", "file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	selectedTheme := *themeFlag
	if selectedTheme == "" {
		selectedTheme = cfg.Theme
	}
	theme, ok := ParseTheme(selectedTheme)
	if !ok {
		fmt.Printf("Invalid theme '%s'. Use --list-themes to see available options.\n", selectedTheme)
		os.Exit(1)
	}

	m := initialModel(theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	if m.cleanup != nil {
		m.cleanup()
	}
}

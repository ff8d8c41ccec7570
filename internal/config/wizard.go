package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result to
// path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cryptobook! Let's configure your book server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to serve the book on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: func(s string) error { _, err := parsePort(s); return err },
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = parsePort(portStr)

	// 2. Cryptography service.
	servicePrompt := promptui.Prompt{
		Label:    "Cryptography service URL",
		Default:  cfg.ServiceURL,
		Validate: validateServiceURL,
	}
	cfg.ServiceURL, err = servicePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("service url: %w", err)
	}

	// 3. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Book title",
		Default: cfg.Title,
	}
	cfg.Title, err = titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 4. Table of contents.
	routesPrompt := promptui.Prompt{
		Label:   "Routes file (leave blank for the built-in table of contents)",
		Default: "",
		Validate: func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := os.Stat(s); err != nil {
				return fmt.Errorf("routes file: %w", err)
			}
			return nil
		},
	}
	cfg.RoutesFile, err = routesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("routes file: %w", err)
	}

	// 5. Log level.
	levelPrompt := promptui.Select{
		Label: "Select log level",
		Items: []string{"info", "debug", "warn", "error"},
	}
	_, cfg.LogLevel, err = levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level selection: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// parsePort converts wizard input into a valid port number.
func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("port must be a number")
	}
	if err := validatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

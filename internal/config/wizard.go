package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/knightsbridge/faqsite/internal/extension"
)

// themeChoices and fallbackChoices are the Select items of the wizard, in
// the order their values appear.
var (
	themeChoices = []Theme{ThemeDark, ThemeLight}

	fallbackChoices = []struct {
		Value extension.Fallback
		Label string
	}{
		{extension.FallbackFrame, "frame - open the host in a hidden frame next to a direct link"},
		{extension.FallbackLink, "link  - redirect the visitor to the file host"},
	}
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to faqsite! Let's configure the FAQ server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Default theme.
	themePrompt := promptui.Select{
		Label: "Default theme for new visitors",
		Items: themeChoices,
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = themeChoices[themeIdx]

	// 3. Download fallback.
	labels := make([]string, len(fallbackChoices))
	for i, f := range fallbackChoices {
		labels[i] = f.Label
	}
	fallbackPrompt := promptui.Select{
		Label: "When the archive cannot be fetched server-side",
		Items: labels,
	}
	fallbackIdx, _, err := fallbackPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("fallback selection: %w", err)
	}
	cfg.Extension.Fallback = string(fallbackChoices[fallbackIdx].Value)

	// 4. Archive file id.
	filePrompt := promptui.Prompt{
		Label:   "Google Drive file id of the extension archive",
		Default: cfg.Extension.FileID,
	}
	fileID, err := filePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("file id: %w", err)
	}
	cfg.Extension.FileID = strings.TrimSpace(fileID)

	// 5. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory for the download ledger",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = strings.TrimSpace(dataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

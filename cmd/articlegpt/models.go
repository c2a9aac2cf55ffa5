package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/articlegpt/internal/config"
)

var (
	flagModelType string
	flagBaseURL   string
	flagAPIKey    string
	flagModelID   string
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage configured model adapters",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		for _, name := range a.registry.Names() {
			m, _ := a.registry.Get(name)
			marker := " "
			if name == a.registry.ActiveName() {
				marker = "*"
			}
			fmt.Printf("%s %s (%s) model=%s ids=%s\n", marker, name, m.ModelType, m.SelectedModel, strings.Join(m.Models, ","))
		}
		return nil
	},
}

var modelsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a model adapter and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		name := args[0]
		switch flagModelType {
		case config.TypeOpenAI, config.TypeAnthropic, config.TypeGemini, config.TypeGeneric:
		default:
			return fmt.Errorf("unknown model type: %s", flagModelType)
		}
		if flagBaseURL == "" && flagModelType != config.TypeGemini {
			return fmt.Errorf("--base-url is required for %s models", flagModelType)
		}
		if flagModelID == "" {
			return fmt.Errorf("--model is required")
		}

		m := &config.Model{
			Name:          name,
			BaseURL:       flagBaseURL,
			APIKeyName:    strings.ToUpper(name) + "_API_KEY",
			APIKey:        flagAPIKey,
			Models:        []string{flagModelID},
			SelectedModel: flagModelID,
			ModelType:     flagModelType,
		}
		if err := a.registry.Add(m); err != nil {
			return err
		}
		a.registry.SetActive(name)

		return a.saveConfig()
	},
}

var modelsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a model adapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.registry.Remove(args[0]); err != nil {
			return err
		}
		return a.saveConfig()
	},
}

var modelsUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active model adapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if !a.registry.SetActive(args[0]) {
			return fmt.Errorf("unknown model: %s", args[0])
		}
		return a.saveConfig()
	},
}

var modelsSelectCmd = &cobra.Command{
	Use:   "select <name> <model-id>",
	Short: "Choose which model id the named adapter sends",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.registry.SelectModel(args[0], args[1]); err != nil {
			return err
		}
		return a.saveConfig()
	},
}

func init() {
	modelsAddCmd.Flags().StringVar(&flagModelType, "type", config.TypeOpenAI, "model type: openai, anthropic, gemini or generic")
	modelsAddCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "API base URL")
	modelsAddCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to the <NAME>_API_KEY environment variable)")
	modelsAddCmd.Flags().StringVar(&flagModelID, "model", "", "model id to request")

	modelsCmd.AddCommand(modelsListCmd, modelsAddCmd, modelsRemoveCmd, modelsUseCmd, modelsSelectCmd)
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demoworks/surveyd/internal/api"
	"github.com/demoworks/surveyd/internal/cli/prompt"
	"github.com/demoworks/surveyd/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample surveyd configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/surveyd/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  surveyd init

  # Initialize with custom path
  surveyd init --config /etc/surveyd/config.yaml

  # Force overwrite existing config
  surveyd init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	configPath := configFile
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	force := initForce

	// Offer an interactive overwrite confirmation when the file exists
	// and --force was not given.
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			ok, err := prompt.Confirm(fmt.Sprintf("Configuration file %s already exists. Overwrite?", configPath), false)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
			force = true
		}
	}

	var err error
	if configFile != "" {
		// Use custom path
		err = config.InitConfigToPath(configFile, force)
	} else {
		// Use default path
		configPath, err = config.InitConfig(force)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to customize your setup")
	fmt.Println("  2. Start the server with: surveyd start")
	fmt.Printf("  3. Or specify custom config: surveyd start --config %s\n", configPath)
	fmt.Println("\nSecurity note:")
	fmt.Println("  A random token secret has been generated for development use.")
	fmt.Println("  For production, share the identity provider's secret via an environment variable:")
	fmt.Println("    # Generates a 64-character hex string (32 bytes of entropy)")
	fmt.Printf("    export %s=$(openssl rand -hex 32)\n", api.EnvAuthSecret)

	return nil
}

// internal/commands/show_config.go
package modelhub

import (
	"github.com/marouane-chirane/ModelHub/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by env vars and flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			APIURL:         viper.GetString("apiURL"),
			TimeoutSeconds: viper.GetInt("timeout"),
			AlertSeconds:   viper.GetInt("alertSeconds"),
			LogFile:        viper.GetString("logFile"),
			Debug:          viper.GetBool("debug"),
			JSONMode:       viper.GetBool("jsonMode"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}

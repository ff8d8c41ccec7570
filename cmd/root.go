package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cryptobook/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cryptobook",
	Short: "Serve the cryptography course book",
	Long: `Cryptobook serves a small online book of cryptography exercises: a numbered
table of contents, a sticky header bar that follows the reader's scrolling,
previous/next chapter links and exercise forms backed by a remote
cryptography service.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

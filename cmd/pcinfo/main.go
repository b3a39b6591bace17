package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pcinfo",
	Short: "pcinfo - hardware and software inventory of the local machine",
	Long: `pcinfo collects system, CPU, memory, disk, BIOS, network, motherboard,
peripheral, video, monitor and audio information from the local machine and
prints it as tables, JSON or YAML.

Run without a subcommand to collect once (equivalent to 'run').`,
	SilenceUsage: true,
	RunE:         runCollect,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Collect the inventory and print it",
	RunE:  runCollect,
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe what pcinfo reports",
	RunE:  runAbout,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pcinfo %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/pcinfo.yaml)")
	rootCmd.PersistentFlags().String("format", "", "output format: table, json or yaml (default table)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "write the report to this file instead of stdout")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error (default info)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

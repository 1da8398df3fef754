package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snessynth",
	Short: "SNES pad MIDI instrument",
	Long:  `Turns a SNES controller into a scale-aware MIDI instrument with mono, chord and boogie playstyles.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

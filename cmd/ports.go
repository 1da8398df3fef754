package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdamask/snesSynth2025/midi"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI ports",
	Long:  `Lists the MIDI input and output ports visible to the instrument.`,
	Run: func(cmd *cobra.Command, args []string) {
		defer midi.CloseDriver()

		fmt.Println("inputs:")
		for _, name := range midi.InPortNames() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("outputs:")
		for _, name := range midi.OutPortNames() {
			fmt.Printf("  %s\n", name)
		}
	},
}

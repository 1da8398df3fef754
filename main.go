package main

import "github.com/sdamask/snesSynth2025/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/RyanBlaney/harmonic-analysis/cmd"

func main() {
	cmd.Execute()
}

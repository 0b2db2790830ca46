package main

import "roster-hub/cmd"

func main() {
	cmd.Execute()
}

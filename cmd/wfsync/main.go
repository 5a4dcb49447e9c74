package main

import "wfsync/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/dotcommander/contentgate/cmd"

func main() {
	cmd.Execute()
}

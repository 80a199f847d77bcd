package main

import "shopctl/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mouse-blink/covrig/cmd"

func main() {
	cmd.Execute()
}

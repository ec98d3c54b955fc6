package main

import "github.com/Tiliavir/legacy-echo/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/philipparndt/goplot3d/cmd"

func main() {
	cmd.Execute()
}

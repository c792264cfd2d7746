package main

import "blockpatch/cmd/blockpatch/cmd"

func main() {
	cmd.Execute()
}

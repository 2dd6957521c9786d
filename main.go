package main

import "crmd/cmd"

func main() {
	cmd.Execute()
}

package main

import "tidyhome/cmd/hmda/cmd"

func main() {
	cmd.Execute()
}

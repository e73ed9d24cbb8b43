package main

import "github.com/encodeous/stp/cmd"

func main() {
	cmd.Execute()
}

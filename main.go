package main

import "github.com/tejaswik02/campusplace/cmd"

func main() {
	cmd.Execute()
}

package main

import "resume-studio/cmd"

func main() {
	cmd.Execute()
}

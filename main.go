package main

import "github.com/djedi23/sleep-progress/cmd"

func main() {
	cmd.Execute()
}

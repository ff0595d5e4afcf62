package main

import "github.com/klytics/xlstack/cmd"

func main() {
	cmd.Execute()
}

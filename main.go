package main

import "github.com/maxvaer/pather/cmd"

func main() {
	cmd.Execute()
}

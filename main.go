package main

import "github.com/darealghost7/data-vis/cmd"

func main() {
	cmd.Execute()
}

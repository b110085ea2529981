package main

import "github.com/rolodex-hq/rolodex/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/openretail/backoffice/cmd"

func main() {
	cmd.Execute()
}

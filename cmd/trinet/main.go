package main

import "github.com/trinets/trinet/cmd/trinet/cmd"

func main() {
	cmd.Execute()
}

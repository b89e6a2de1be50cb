package main

import "github.com/oshokin/panic-button/cmd/panic-server/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/nfrund/resumio/cmd/resumio/cmd"

func main() {
	cmd.Execute()
}

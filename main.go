package main

import "github.com/ortholab/depisto_backend/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/MeKo-Tech/csscolor/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/eryajf/jenstat/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/gitkeeper/gitkeeper/cmd/gitkeeper/cmd"
)

func main() {
	cmd.Execute()
}

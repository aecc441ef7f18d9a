package main

import (
	"github.com/iscol-meeting/iscol2025/cmd"
)

func main() {
	cmd.Execute()
}

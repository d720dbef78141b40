package main

import (
	"context"

	"github.com/spf13/cobra"

	"morse_translator/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}

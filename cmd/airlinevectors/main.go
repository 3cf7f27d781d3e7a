package main

import (
	"context"

	"airlinevectors/cmd/airlinevectors/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}

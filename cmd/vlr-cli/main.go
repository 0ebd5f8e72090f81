package main

import (
	"context"
	"vlrdata-backend/cmd/vlr-cli/commands"
	"vlrdata-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "vlr-cli")
	commands.ExecuteContext(context.Background())
}

package main

import "github.com/GoSim-25-26J-441/supplynet-backend/cmd/supplynet-cli/cmd"

func main() {
	cmd.Execute()
}

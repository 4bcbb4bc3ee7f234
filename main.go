package main

import "soccerscout/app/cmd"

func main() {
	cmd.Execute()
}

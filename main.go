package main

import "bookmychair/cmd"

func main() {
	cmd.Execute()
}

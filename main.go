package main

import "github.com/Umaima-s-pathan/VR-final/cmd"

func main() {
	cmd.Execute()
}

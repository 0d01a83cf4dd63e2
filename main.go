package main

import "reach-estimator/cmd"

func main() {
	cmd.Execute()
}

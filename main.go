package main

import (
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/cmd"
)

func main() {
	cmd.Execute()
}

// qsim - CLI application for simulating and recording single-qubit gate sessions.
package main

import (
	"github.com/spinhalf/goqubit/internal/cli"
)

func main() {
	cli.Execute()
}

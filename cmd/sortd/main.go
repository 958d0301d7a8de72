// Command sortd sorts loose files under the user's home directory into
// tidy destination folders.
package main

import (
	"os"

	"sortd/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

// SPDX-License-Identifier: MPL-2.0

package main

import cmd "shoal-cli/cmd/shoal"

func main() {
	cmd.Execute()
}

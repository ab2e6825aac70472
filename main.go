// ddr runs dd and shows its progress in a readable, continuously updated form
package main

import "ddr/cmd"

func main() {
	cmd.Execute()
}

// Package main provides storefrontctl, a small operator CLI for the local
// development platform: seeding products, inspecting carts, and managing
// user accounts through the same integration surface applications use.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

/*
Copyright © 2026 taskmirror authors
*/
package main

import "github.com/taskmirror/taskmirror/cmd"

func main() {
	cmd.Execute()
}

/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/sikiriki12/imgx/cmd"

func main() {
	cmd.Execute()
}

/*
Copyright © 2025 Harshilmalhotra
*/
package main

import (
	"log"

	"github.com/Harshilmalhotra/bfhl-internal-hack/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

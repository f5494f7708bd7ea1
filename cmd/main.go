package main

import (
	_ "github.com/joho/godotenv/autoload"

	cmd "github.com/kerbaras/thrones/cmd/thrones"
)

func main() {
	cmd.Execute()
}

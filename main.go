package main

import "github.com/dealerdesk/dealerdesk_backend/cmd"

func main() {
	cmd.Execute()
}

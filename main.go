package main

import (
	"fmt"
	"os"
	"textpay/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "reset-rate-limiter" {
		if err := cmd.ResetRateLimiter(os.Args[2:]); err != nil {
			fmt.Printf("reset-rate-limiter run into an error: %s", err)
			os.Exit(1)
		}
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"shop-admin.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = crypto.HashPassword
	fatalfFn       = log.Fatalf
)

func main() {
	if len(os.Args) < 2 {
		fatalfFn("usage: genhash <password>")
		return
	}

	hash, err := generateHashFn(os.Args[1])
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
		return
	}
	printfFn("%s\n", hash)
}

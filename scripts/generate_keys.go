//go:build ignore

// This script generates random API keys for the X-API-Key header.
// Run with: go run scripts/generate_keys.go -n 2
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func generateAPIKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	count := flag.Int("n", 1, "number of keys to generate")
	length := flag.Int("bytes", 24, "random bytes per key")
	flag.Parse()

	if *count < 1 || *length < 16 {
		fmt.Fprintln(os.Stderr, "need -n >= 1 and -bytes >= 16")
		os.Exit(2)
	}

	keys := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		key, err := generateAPIKey(*length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Println("# Add to your .env file (one key per client, comma separated)")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
}

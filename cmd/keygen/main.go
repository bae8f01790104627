package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"shop-admin.backend/pkg/crypto"
)

// keys printed as .env lines; each is 32 random bytes hex encoded
var envKeys = []string{"JWT_SECRET", "SECRET_ENCRYPTION_KEY", "SESSION_ENCRYPTION_KEY"}

var randomToken = crypto.GenerateRandomToken

func generateKeys(only string) (map[string]string, error) {
	keys := envKeys
	if only != "" {
		keys = nil
		for _, k := range envKeys {
			if k == only {
				keys = []string{k}
			}
		}
		if keys == nil {
			return nil, fmt.Errorf("unknown key %s", only)
		}
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := randomToken(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", k, err)
		}
		// the encryption keys must be usable by the AES cipher as-is
		if _, err := crypto.NewCipher(v); err != nil {
			return nil, fmt.Errorf("generated %s is not a valid key: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	only := fs.String("only", "", "generate a single key by env name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	keys, err := generateKeys(*only)
	if err != nil {
		return err
	}
	for _, k := range envKeys {
		if v, ok := keys[k]; ok {
			_, _ = fmt.Fprintf(w, "%s=%s\n", k, v)
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

package cli

import (
	"fmt"
	"os"
	"strings"
)

// promptPIN reads a PIN from the terminal without echoing it. When the
// terminal cannot suppress echo (pipes, unsupported platforms), it falls
// back to a plain read so scripted input still works.
func promptPIN(label string) (string, error) {
	fmt.Printf("%s: ", label)

	secret, err := readSecretNoEcho(os.Stdin)
	if err == nil {
		fmt.Println()
		return string(secret), nil
	}

	var line string
	if _, scanErr := fmt.Scanln(&line); scanErr != nil {
		return "", fmt.Errorf("read pin: %w", scanErr)
	}
	return strings.TrimSpace(line), nil
}

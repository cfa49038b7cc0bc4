package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName = "lingvobot"
	// account holds the GigaChat authorization key: base64(client_id:client_secret)
	// exactly as issued by the developer portal. It is submitted verbatim in the
	// Basic header of the OAuth exchange.
	account = "gigachat-authorization-key"
	envVar  = "GIGACHAT_CREDENTIALS"
)

// GetCredentials retrieves the GigaChat authorization key and reports where it
// came from. If allowEnv is false, the environment variable is ignored.
func GetCredentials(allowEnv bool) (string, string) {
	key, err := keyring.Get(serviceName, account)
	if err == nil && key != "" {
		return strings.TrimSpace(key), "Keychain"
	}

	if allowEnv {
		if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
			return key, "Environment Variable"
		}
	}

	return "", ""
}

// SaveCredentials stores the authorization key in the OS Keychain.
func SaveCredentials(key string) error {
	return keyring.Set(serviceName, account, strings.TrimSpace(key))
}

// DeleteCredentials removes the authorization key from the OS Keychain.
func DeleteCredentials() error {
	return keyring.Delete(serviceName, account)
}

// HasStoredCredentials returns whether an authorization key exists in the keychain.
func HasStoredCredentials() bool {
	key, err := keyring.Get(serviceName, account)
	return err == nil && key != ""
}

// GetEnvCredentials retrieves the authorization key from the environment only.
func GetEnvCredentials() (string, bool) {
	key := strings.TrimSpace(os.Getenv(envVar))
	if key == "" {
		return "", false
	}
	return key, true
}

// PromptForCredentials securely prompts the user for the authorization key.
func PromptForCredentials(prompt string) (string, error) {
	fmt.Print(prompt)
	byteKey, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after hidden input
	return strings.TrimSpace(string(byteKey)), nil
}

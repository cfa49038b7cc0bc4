package main

import (
	"testing"
)

type credStubs struct {
	promptCalls   int
	keychainCalls int
	envCalls      int
}

func withCredStubs(t *testing.T, terminal bool, promptVal, keychainVal, envVal string) (*credStubs, func()) {
	t.Helper()
	stubs := &credStubs{}

	prevIsTerminal := isTerminal
	prevPrompt := promptForCredentials
	prevGet := getCredentials
	prevGetEnv := getEnvCredentials

	isTerminal = func(_ int) bool { return terminal }
	promptForCredentials = func(_ string) (string, error) {
		stubs.promptCalls++
		return promptVal, nil
	}
	getCredentials = func(_ bool) (string, string) {
		stubs.keychainCalls++
		if keychainVal == "" {
			return "", ""
		}
		return keychainVal, "Keychain"
	}
	getEnvCredentials = func() (string, bool) {
		stubs.envCalls++
		if envVal == "" {
			return "", false
		}
		return envVal, true
	}

	restore := func() {
		isTerminal = prevIsTerminal
		promptForCredentials = prevPrompt
		getCredentials = prevGet
		getEnvCredentials = prevGetEnv
	}

	return stubs, restore
}

func TestResolveCredentials_KeychainFirst(t *testing.T) {
	stubs, restore := withCredStubs(t, true, "", "keychain-key", "env-key")
	defer restore()

	key, source, err := resolveCredentials(true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "keychain-key" || source != "Keychain" {
		t.Fatalf("expected keychain key/source, got key=%q source=%q", key, source)
	}
	if stubs.envCalls != 0 {
		t.Fatalf("expected no env calls, got envCalls=%d", stubs.envCalls)
	}
}

func TestResolveCredentials_EnvWhenAllowed(t *testing.T) {
	stubs, restore := withCredStubs(t, false, "", "", "env-key")
	defer restore()

	key, source, err := resolveCredentials(true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" || source != "Environment Variable" {
		t.Fatalf("expected env key/source, got key=%q source=%q", key, source)
	}
	if stubs.envCalls == 0 {
		t.Fatalf("expected env call")
	}
}

func TestResolveCredentials_EnvDisabledByDefault(t *testing.T) {
	stubs, restore := withCredStubs(t, false, "", "", "env-key")
	defer restore()

	key, source, err := resolveCredentials(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" || source != "" {
		t.Fatalf("env must stay disabled, got key=%q source=%q", key, source)
	}
	if stubs.envCalls != 0 {
		t.Fatalf("expected no env calls, got envCalls=%d", stubs.envCalls)
	}
}

func TestResolveCredentials_MissingKeyIsLocalOnlyNotError(t *testing.T) {
	stubs, restore := withCredStubs(t, false, "", "", "")
	defer restore()

	key, source, err := resolveCredentials(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" || source != "" {
		t.Fatalf("expected empty result, got key=%q source=%q", key, source)
	}
	if stubs.promptCalls != 0 {
		t.Fatalf("expected no prompt in non-interactive shell, got promptCalls=%d", stubs.promptCalls)
	}
}

func TestResolveCredentials_EnvOnlySuccess(t *testing.T) {
	stubs, restore := withCredStubs(t, false, "prompt-key", "keychain-key", "env-key")
	defer restore()

	key, source, err := resolveCredentials(false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" || source != "Environment Variable" {
		t.Fatalf("expected env key/source, got key=%q source=%q", key, source)
	}
	if stubs.promptCalls != 0 || stubs.keychainCalls != 0 {
		t.Fatalf("expected no prompt/keychain calls, got promptCalls=%d keychainCalls=%d", stubs.promptCalls, stubs.keychainCalls)
	}
}

func TestResolveCredentials_EnvOnlyMissingError(t *testing.T) {
	_, restore := withCredStubs(t, false, "", "keychain-key", "")
	defer restore()

	if _, _, err := resolveCredentials(false, true); err == nil {
		t.Fatalf("expected error")
	}
}

func TestResolveCredentials_PromptFallback(t *testing.T) {
	stubs, restore := withCredStubs(t, true, "prompt-key", "", "")
	defer restore()

	key, source, err := resolveCredentials(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "prompt-key" || source != "Terminal Prompt" {
		t.Fatalf("expected prompt key/source, got key=%q source=%q", key, source)
	}
	if stubs.keychainCalls == 0 {
		t.Fatalf("expected keychain lookup before prompt")
	}
}

func TestResolveCredentials_PromptSkippedMeansLocalOnly(t *testing.T) {
	stubs, restore := withCredStubs(t, true, "", "", "")
	defer restore()

	key, source, err := resolveCredentials(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" || source != "" {
		t.Fatalf("expected local-only result, got key=%q source=%q", key, source)
	}
	if stubs.promptCalls != 1 {
		t.Fatalf("expected exactly one prompt, got %d", stubs.promptCalls)
	}
}

func TestTextFromArgs(t *testing.T) {
	if got := textFromArgs([]string{"привет", "мир"}); got != "привет мир" {
		t.Fatalf("joined text = %q", got)
	}
	if got := textFromArgs([]string{"  ", ""}); got != "" {
		t.Fatalf("blank args should collapse to empty, got %q", got)
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/amezhanin/finlock/internal/adapter"
	"github.com/amezhanin/finlock/internal/config"
	"github.com/amezhanin/finlock/internal/crypto"
	"github.com/amezhanin/finlock/internal/logger"
	"github.com/amezhanin/finlock/models"
)

// session wires the client components for one command invocation. The key
// slot lives only as long as the process; exiting is the logout.
type session struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	adapter  adapter.ServerAdapter
	keychain crypto.KeyChain
	keys     *crypto.KeySlot
}

func newSession() (*session, error) {
	cfg, err := config.GetClientConfig(flagOverrides())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logOut := io.Discard
	if verbose {
		logOut = os.Stderr
	}
	log := logger.NewLogger("cli", cfg.App.LogLevel, logOut)

	srv, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		return nil, err
	}

	keychain := crypto.NewKeyChain()
	return &session{
		cfg:      cfg,
		log:      log,
		adapter:  srv,
		keychain: keychain,
		keys:     crypto.NewKeySlot(keychain),
	}, nil
}

// login authenticates against the backend and returns the password just
// entered together with the account's encryption salt, so the caller can
// derive the session key. The password goes no further than the login
// request and the derivation.
func (s *session) login(ctx context.Context) (password, saltB64 string, err error) {
	login := s.cfg.App.Login
	if login == "" {
		login, err = promptLine("Login")
		if err != nil {
			return "", "", err
		}
	}

	password, err = promptPassword("Password")
	if err != nil {
		return "", "", err
	}

	if _, err = s.adapter.Login(ctx, models.Credentials{Login: login, Password: password}); err != nil {
		return "", "", fmt.Errorf("login: %w", err)
	}

	info, err := s.adapter.AccountInfo(ctx)
	if err != nil {
		return "", "", fmt.Errorf("fetch account info: %w", err)
	}
	if info.EncryptionSalt == "" {
		return "", "", fmt.Errorf("account has no encryption salt")
	}

	s.log.Info().Str("login", login).Msg("authenticated")
	return password, info.EncryptionSalt, nil
}

// unlock derives the session key and installs it in the key slot.
func (s *session) unlock(password, saltB64 string) error {
	key, err := s.keychain.DeriveKey(password, saltB64)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	s.keys.Replace(key)
	return nil
}

func promptLine(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty password")
	}
	return string(raw), nil
}

// Package cli implements the interactive command-line client: credential
// prompts and the command dispatch for register, login, whoami and ping.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/common"
)

// App binds the API client to an input reader and output writer.
type App struct {
	client *api.Client
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(client *api.Client, in io.Reader, out io.Writer) *App {
	return &App{client: client, in: bufio.NewReader(in), out: out}
}

// Run executes a single command and returns its error, already translated
// into a user-facing message where the failure is an expected one.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "ping":
		return a.ping(ctx)
	default:
		return fmt.Errorf("unknown command %q (expected register, login, whoami or ping)", command)
	}
}

func (a *App) register(ctx context.Context) error {
	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return errors.New("that username is already taken")
		case errors.Is(err, common.ErrorInvalidInput):
			return errors.New("username and password must not be empty")
		default:
			return err
		}
	}

	fmt.Fprintf(a.out, "Registered. Access token:\n%s\n", token)
	return nil
}

func (a *App) login(ctx context.Context) error {
	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			return errors.New("invalid username or password")
		case errors.Is(err, common.ErrorInvalidInput):
			return errors.New("username and password must not be empty")
		default:
			return err
		}
	}

	fmt.Fprintf(a.out, "Logged in. Access token:\n%s\n", token)
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	token, err := GetSimpleText(a.in, "Paste access token", a.out)
	if err != nil {
		return err
	}

	identity, err := a.client.Whoami(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingToken):
			return errors.New("no token presented")
		case errors.Is(err, common.ErrorUnauthorized):
			return errors.New("token rejected; log in again")
		default:
			return err
		}
	}

	fmt.Fprintf(a.out, "%s\n", identity.Message)
	return nil
}

func (a *App) ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) promptCredentials() (string, []byte, error) {
	username, err := GetSimpleText(a.in, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", nil, err
	}

	return username, password, nil
}

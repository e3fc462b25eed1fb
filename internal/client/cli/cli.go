package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/flightbase/flightbase/internal/client/api"
	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/client/storage/boltdb"
	clientsync "github.com/flightbase/flightbase/internal/client/sync"
)

// Cli связывает команды консольного клиента с драйвером синхронизации
type Cli struct {
	apiClient   *api.Client
	boltStorage *boltdb.Storage
	driver      *clientsync.Driver
}

func New(apiClient *api.Client, boltStorage *boltdb.Storage, driver *clientsync.Driver) *Cli {
	return &Cli{
		apiClient:   apiClient,
		boltStorage: boltStorage,
		driver:      driver,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "queue":
		return c.runQueue(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "resolve":
		return c.runResolve(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("FlightBase Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  flightbase [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version    Show version information")
	fmt.Println("  --server URL Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH    Path to local database (default: flightbase-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                       Register new user")
	fmt.Println("  login                          Log in and store the session")
	fmt.Println("  logout                         Remove the stored session")
	fmt.Println("  status                         Show queue and conflict counts")
	fmt.Println("  queue KIND ACTION JSON         Queue a local change")
	fmt.Println("  sync                           Push queued changes to the server")
	fmt.Println("  conflicts                      List unresolved conflicts")
	fmt.Println("  resolve ID server|mine|both    Resolve a conflict")
}

// session загружает сохраненную сессию и передает ее драйверу
func (c *Cli) session(ctx context.Context) (*storage.SessionData, error) {
	session, err := c.boltStorage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not logged in, run login first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	c.driver.SetSession(session.UserID, session.AccessToken)
	return session, nil
}

// readInput читает строку со стандартного ввода
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

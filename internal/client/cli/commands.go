package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/models"
	"github.com/flightbase/flightbase/pkg/api"
)

// userIDFromToken достает user_id из claims без проверки подписи,
// подпись проверяет только сервер
func userIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Register ===")

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Registration successful!")
	fmt.Printf("User ID: %s\n", resp.UserID)
	fmt.Println("Run login to start a session.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.SessionData{
		Username:    username,
		UserID:      userIDFromToken(resp.AccessToken),
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}
	if err := c.boltStorage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("Login successful!")
	fmt.Printf("Access token expires in %d seconds\n", resp.ExpiresIn)

	// Сразу замеряем расхождение часов, пока сеть точно есть
	c.driver.SetSession(session.UserID, session.AccessToken)
	if _, err := c.driver.SyncServerTime(ctx); err != nil {
		fmt.Printf("Warning: failed to measure clock offset: %v\n", err)
	}

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.boltStorage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	pending, err := c.driver.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending mutations: %w", err)
	}

	conflicts, err := c.driver.ConflictCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count conflicts: %w", err)
	}

	fmt.Printf("Logged in as:       %s\n", session.Username)
	fmt.Printf("Pending mutations:  %d\n", pending)
	fmt.Printf("Open conflicts:     %d\n", conflicts)

	return nil
}

func (c *Cli) runQueue(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: queue KIND ACTION JSON")
	}

	if _, err := c.session(ctx); err != nil {
		return err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(args[2]), &payload); err != nil {
		return fmt.Errorf("invalid payload JSON: %w", err)
	}

	localID, err := c.driver.QueueMutation(ctx,
		models.EntityKind(args[0]), models.Action(args[1]), payload)
	if err != nil {
		return err
	}

	fmt.Printf("Queued %s %s as %s\n", args[0], args[1], localID)
	fmt.Println("Run sync to push it to the server.")

	return nil
}

func (c *Cli) runSync(ctx context.Context) error {
	if _, err := c.session(ctx); err != nil {
		return err
	}

	// Явный вызов: соединение считаем живым, дебаунс не нужен
	c.driver.SetOnline(true)

	if _, err := c.driver.SyncServerTime(ctx); err != nil {
		fmt.Printf("Warning: failed to measure clock offset: %v\n", err)
	}

	result, err := c.driver.SyncNow(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Applied:   %d\n", result.Applied)
	fmt.Printf("Conflicts: %d\n", result.Conflicts)
	fmt.Printf("Errors:    %d\n", result.Errors)

	if result.Conflicts > 0 {
		fmt.Println()
		fmt.Println("Run conflicts to inspect, then resolve ID server|mine|both.")
	}

	return nil
}

func (c *Cli) runConflicts(ctx context.Context) error {
	if _, err := c.session(ctx); err != nil {
		return err
	}

	conflicts, err := c.driver.ListConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	if len(conflicts) == 0 {
		fmt.Println("No unresolved conflicts.")
		return nil
	}

	for _, conflict := range conflicts {
		fmt.Printf("Conflict %s\n", conflict.ID)
		fmt.Printf("  Kind:     %s\n", conflict.Kind)
		fmt.Printf("  Type:     %s\n", conflict.ConflictType)
		fmt.Printf("  Detected: %s\n", conflict.DetectedAt.Format(time.RFC3339))

		local, _ := json.Marshal(conflict.LocalData)
		fmt.Printf("  Local:    %s\n", local)

		if conflict.ConflictType == models.ConflictDeleted {
			fmt.Printf("  Server:   (deleted)\n")
		} else {
			server, _ := json.Marshal(conflict.ServerData)
			fmt.Printf("  Server:   %s (modified %s)\n",
				server, conflict.ServerModifiedAt.Format(time.RFC3339))
		}
		fmt.Println()
	}

	return nil
}

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: resolve CONFLICT_ID server|mine|both")
	}

	if _, err := c.session(ctx); err != nil {
		return err
	}

	if err := c.driver.ResolveConflict(ctx, args[0], models.Resolution(args[1])); err != nil {
		return err
	}

	fmt.Printf("Conflict %s resolved with %q.\n", args[0], args[1])
	fmt.Println("Run sync to push any re-queued changes.")

	return nil
}
